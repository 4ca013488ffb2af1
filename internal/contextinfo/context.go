package contextinfo

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"unicode/utf8"

	"shelp/internal/config"
)

// Info is the environment context sent along with every request. All fields
// are optional; empty fields contribute nothing to the assembled block.
type Info struct {
	OS          string
	Shell       string
	Cwd         string
	Tree        string
	Environment string
	Programs    string
}

// Collect assembles the context from the resolved configuration. It never
// fails: sections that cannot be gathered are simply left out.
func Collect(cfg *config.Config) Info {
	info := Info{
		OS:          cfg.OSLabel,
		Shell:       cfg.Shell,
		Environment: strings.Join(cfg.Environment, ","),
	}
	if cfg.IncludeCwd {
		if cwd, err := os.Getwd(); err == nil {
			info.Cwd = cwd
		}
	}
	if cfg.TreeDepth > 0 {
		if tree, err := directoryTree(cfg.TreeDepth); err == nil {
			info.Tree = tree
		}
	}
	if cfg.Task == config.TaskAsk {
		info.Programs = strings.Join(cfg.Programs, ",")
	}
	return info
}

// String renders the context block prepended to the user prompt.
func (i Info) String() string {
	var b strings.Builder
	if i.OS != "" {
		fmt.Fprintf(&b, "You are operating on %s", i.OS)
		if i.Shell != "" {
			fmt.Fprintf(&b, " and your shell is %s", i.Shell)
		}
		b.WriteString("\n")
	}
	if i.Cwd != "" {
		fmt.Fprintf(&b, "You are currently in folder: %s\n", i.Cwd)
	}
	if i.Tree != "" {
		fmt.Fprintf(&b, "The tree command run in the current folder gave this output: %s\n", i.Tree)
	}
	if i.Environment != "" {
		fmt.Fprintf(&b, "The following environment variables are defined: %s\n", i.Environment)
	}
	if i.Programs != "" {
		fmt.Fprintf(&b, "You have the following programs installed in the system, you should only use these programs to accomplish the <task>: %s\n", i.Programs)
	}
	return b.String()
}

// BuildRequest wraps the raw prompt in the task tag expected by the system
// instructions and prepends the context block.
func BuildRequest(prompt string, info Info) string {
	return info.String() + fmt.Sprintf("Here is your <task>: \n <task>%s</task>", prompt)
}

func directoryTree(depth int) (string, error) {
	out, err := exec.Command("tree", "-L", strconv.Itoa(depth)).Output()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("tree output is not valid UTF-8")
	}
	return string(out), nil
}
