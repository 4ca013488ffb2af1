package cmd

import (
	"github.com/spf13/cobra"

	"shelp/internal/config"
)

func addCommonFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Bool("pwd", false, "disclose the working directory to the model")
	flags.Int("depth", 0, "include a directory tree of the given depth")
	flags.StringSlice("environment", nil, "environment variable names to disclose")
	flags.String("model", "", "model identifier (default "+config.DefaultModel+")")
	flags.String("os", "", "operating system label (default: detected)")
	flags.String("shell", "", "shell label (default: detected)")
	flags.Bool("write-stdout", false, "print the response to stdout on exit")
	flags.String("edit-file", "", "file that seeds the input and receives accepted output")
	flags.Bool("debug", false, "write a debug log under the user cache directory")
}

// resolveConfig merges the optional config file under the command flags:
// a flag that was set on the command line always wins.
func resolveConfig(cmd *cobra.Command, task config.Task) (*config.Config, error) {
	fileCfg, err := config.LoadFileConfig()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	cfg := &config.Config{
		Task:        task,
		Model:       fileCfg.Model,
		TreeDepth:   fileCfg.Depth,
		Environment: fileCfg.Environment,
		WriteStdout: fileCfg.WriteStdout,
	}
	if task == config.TaskAsk {
		cfg.Programs = fileCfg.Programs
	}

	cfg.IncludeCwd, _ = flags.GetBool("pwd")
	cfg.EditFile, _ = flags.GetString("edit-file")
	cfg.Debug, _ = flags.GetBool("debug")

	if flags.Changed("model") {
		cfg.Model, _ = flags.GetString("model")
	}
	if flags.Changed("depth") {
		cfg.TreeDepth, _ = flags.GetInt("depth")
	}
	if flags.Changed("environment") {
		cfg.Environment, _ = flags.GetStringSlice("environment")
	}
	if flags.Changed("write-stdout") {
		cfg.WriteStdout, _ = flags.GetBool("write-stdout")
	}
	if task == config.TaskAsk && flags.Changed("programs") {
		cfg.Programs, _ = flags.GetStringSlice("programs")
	}

	if cfg.Model == "" {
		cfg.Model = config.DefaultModel
	}

	cfg.OSLabel, _ = flags.GetString("os")
	if cfg.OSLabel == "" {
		cfg.OSLabel = config.DetectOSLabel()
	}
	cfg.Shell, _ = flags.GetString("shell")
	if cfg.Shell == "" {
		cfg.Shell = config.DetectShell()
	}

	return cfg, nil
}
