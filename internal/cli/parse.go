package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/5t3ph/metaschema/internal/metafile"
)

var parseCmd = &cobra.Command{
	Use:   "parse <meta_file>",
	Short: "Parse a meta file and print the resulting record",
	Long: `Parse one meta file exactly as the site build would and print the record
it contributes to the data cascade as indented JSON.

The record has a single key, the file's base name without its extension.

Examples:
  metaschema parse ./src/posts/first.meta`,
	Args: RequireMetaFile,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	record, err := metafile.Parse(string(content), filePath)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
