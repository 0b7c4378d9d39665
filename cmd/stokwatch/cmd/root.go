// Package cmd implements the CLI commands for the stokwatch daemon.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "stokwatch",
	Short: "Monitor store wishlists for stock changes",
	Long: "A service that periodically scrapes store wishlist pages, detects\n" +
		"items coming back in stock, and pushes at-most-once alerts via FCM.",
}

func init() {
	cobra.OnInitialize(loadDotEnv)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// loadDotEnv loads a local .env file if present so ${VAR} substitution in
// the YAML config picks up development secrets. Missing files are fine.
func loadDotEnv() {
	_ = godotenv.Load()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
