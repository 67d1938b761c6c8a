package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireSitePath validates that exactly one site_path argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireSitePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <site_path>

Usage: %s

Example:
  %s ./src`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireMetaFile validates that exactly one meta_file argument is provided.
func RequireMetaFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <meta_file>

Usage: %s

Example:
  %s ./src/posts/first.meta`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
