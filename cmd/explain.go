package cmd

import (
	"github.com/spf13/cobra"

	"shelp/internal/app"
	"shelp/internal/config"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Paste a command and get an explanation of what it does",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, config.TaskExplain)
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
	addCommonFlags(explainCmd)
}
