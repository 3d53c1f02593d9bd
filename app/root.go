// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inkpress",
	Short: "Inkpress is a content management backend",
	Long: `Inkpress is a content management backend that exposes a REST API
for managing users, categories, tags, content with revision history,
moderated comments and site settings.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
