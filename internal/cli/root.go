package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "metaschema",
	Short: "Validate sidecar metadata against collection schemas",
	Long: `metaschema reads a static site, parses its .meta sidecar files into the
data cascade, and checks every tagged page's metadata against the schema
object of its first collection.

Findings are advisory: they are printed, never fatal, unless --strict is given.

Exit Codes:
  0  - Success (findings, if any, were reported)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or options
  11 - Malformed meta file, data file or front matter
  12 - Site directory not found
  13 - Findings reported with --strict`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
