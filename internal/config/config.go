package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// Task selects which system instruction a request carries and which
// capabilities the configuration exposes. Ask carries a program allowlist,
// Explain does not.
type Task int

const (
	TaskAsk Task = iota
	TaskExplain
)

func (t Task) String() string {
	if t == TaskExplain {
		return "explain"
	}
	return "ask"
}

// DefaultModel is used when neither the flags nor the config file name one.
const DefaultModel = "gpt-4o-mini"

// Config is the fully resolved configuration consumed by the session. It is
// built once at startup from the config file overlaid with command flags.
type Config struct {
	Task        Task
	OSLabel     string
	Shell       string
	IncludeCwd  bool
	TreeDepth   int // 0 disables the directory tree
	Environment []string
	Programs    []string // only meaningful for TaskAsk
	Model       string
	WriteStdout bool
	EditFile    string
	Debug       bool
}

// FileConfig is the optional on-disk configuration. Every field is a default
// that command-line flags may override.
type FileConfig struct {
	Model       string   `toml:"model"`
	Depth       int      `toml:"depth"`
	Environment []string `toml:"environment"`
	Programs    []string `toml:"programs"`
	WriteStdout bool     `toml:"write_stdout"`
}

// LoadFileConfig reads the TOML config file if it exists. A missing file is
// not an error; a malformed one is.
func LoadFileConfig() (FileConfig, error) {
	path, err := filePath()
	if err != nil {
		return FileConfig{}, err
	}
	return parseFile(path)
}

func parseFile(path string) (FileConfig, error) {
	var fc FileConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fc, nil
	}
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return fc, nil
}

func filePath() (string, error) {
	// SHELP_HOME takes precedence so tests and scripts can relocate it.
	if home := os.Getenv("SHELP_HOME"); home != "" {
		return filepath.Join(home, "config.toml"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "shelp", "config.toml"), nil
}

// DetectOSLabel returns a human readable operating system name for the
// context block.
func DetectOSLabel() string {
	switch runtime.GOOS {
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	case "windows":
		return "Windows"
	default:
		return runtime.GOOS
	}
}

// DetectShell returns the basename of $SHELL, or a generic fallback.
func DetectShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh)
	}
	return "sh"
}

// Validate rejects configurations the session cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("no model configured")
	}
	if c.TreeDepth < 0 {
		return fmt.Errorf("tree depth must not be negative")
	}
	if c.Task == TaskExplain && len(c.Programs) > 0 {
		return fmt.Errorf("program list is only valid for ask")
	}
	return nil
}
