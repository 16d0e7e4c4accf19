// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-visitor-dash",
	Short: "GoVisitorDash records and reviews homepage visits",
	Long: `GoVisitorDash is a web service that records homepage visits,
enriches them with best-effort IP geolocation and browser-reported device
metadata, and provides an operator dashboard for reviewing visits and
editing the displayed homepage texts.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
