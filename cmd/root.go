package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/roshambo/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "roshambo",
	Short: "Rock-paper-scissors against the machine",
	Long:  "Roshambo — terminal rock-paper-scissors with multiple rule sets and a computer opponent that learns your habits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		skipSplash, _ := cmd.Flags().GetBool("no-splash")
		return app.Run(app.Options{SkipSplash: skipSplash})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}
