package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shelp",
	Short: "Turn plain English into shell commands",
	Long: `shelp is an interactive terminal assistant: describe what you want in
plain English and it streams back a shell command, or hand it a command
and it streams back an explanation.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(explainCmd)
}
