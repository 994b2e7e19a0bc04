// Package cmd implements the command-line interface: one-shot scans, the
// dashboard server and company management.
package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug logging and gin debug mode for all commands.
	debug bool

	rootCmd = &cobra.Command{
		Use:   "people-moves",
		Short: "Executive personnel-change news aggregator",
		Long: `Tracks executive appointments, promotions and hires at a configured
set of companies by scanning news feeds, and serves a review dashboard
for the extracted announcements.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load()
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("people-moves version %s\n", version)
		},
	})

	rootCmd.AddCommand(scanCommand())
	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(companiesCommand())
}
