package cmd

import (
	"github.com/spf13/cobra"

	"shelp/internal/app"
	"shelp/internal/config"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Describe a task and get the shell command for it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, config.TaskAsk)
		if err != nil {
			return err
		}

		application, err := app.New(cfg)
		if err != nil {
			return err
		}
		return application.Run()
	},
}

func init() {
	addCommonFlags(askCmd)
	askCmd.Flags().StringSlice("programs", nil, "programs the generated command may use")
}
