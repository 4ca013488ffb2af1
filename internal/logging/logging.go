package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New returns the application logger. While the TUI owns the terminal nothing
// may be written to stdout or stderr, so debug logging goes to a file under
// the user cache directory and is a no-op unless enabled.
func New(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	path, err := logPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func logPath() (string, error) {
	if home := os.Getenv("SHELP_HOME"); home != "" {
		return filepath.Join(home, "debug.log"), nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "shelp", "debug.log"), nil
}
