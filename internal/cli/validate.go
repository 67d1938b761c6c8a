package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/5t3ph/metaschema/internal/config"
	"github.com/5t3ph/metaschema/internal/logging"
	"github.com/5t3ph/metaschema/internal/plugin"
	"github.com/5t3ph/metaschema/internal/report"
	"github.com/5t3ph/metaschema/internal/site"
	"github.com/5t3ph/metaschema/pkg/metaschema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <site_path>",
	Short: "Validate page metadata against collection schemas",
	Long: `Build the site's data cascade and validate every tagged page.

For each page, the first tag names the collection and the data value stored
under that name is the collection schema: an object mapping field names to
{"type": ..., "required": ...} descriptors. The page's metadata lives under
the meta key (default "meta").

Checks:
  missing-required  schema fields marked required are absent from the metadata
  type-mismatch     a metadata field has a different type than declared
  invalid-key       metadata fields the schema does not declare
  misplaced-key     schema fields set at the top level instead of under the meta key

Configuration is read from metaschema.yaml in the site root, then
METASCHEMA_* environment variables (a .env file is honored), then flags.

Examples:
  # Validate a site
  metaschema validate ./src

  # Machine-readable output
  metaschema validate ./src --json

  # Fail CI on new findings only
  metaschema validate ./src --baseline .metaschema-baseline.json --strict`,
	Args: RequireSitePath,
	RunE: runValidate,
}

type validateFlagValues struct {
	metaKey       string
	metaExtension string
	missingSchema string
	color         string
	json          bool
	strict        bool
	baseline      string
	writeBaseline string
}

var validateFlags validateFlagValues

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.metaKey, "meta-key", metaschema.DefaultMetaKey,
		"Record field holding page metadata")
	validateCmd.Flags().StringVar(&validateFlags.metaExtension, "meta-extension", metaschema.DefaultMetaExtension,
		"File extension of meta files")
	validateCmd.Flags().StringVar(&validateFlags.missingSchema, "missing-schema", string(metaschema.MissingSchemaSkip),
		"What to do when a collection has no schema: skip or warn")
	validateCmd.Flags().StringVar(&validateFlags.color, "color", string(report.ColorAuto),
		"Color findings: auto, always or never")
	validateCmd.Flags().BoolVar(&validateFlags.json, "json", false,
		"Print findings as a JSON array on stdout")
	validateCmd.Flags().BoolVar(&validateFlags.strict, "strict", false,
		"Exit with code 13 when any finding is reported")
	validateCmd.Flags().StringVar(&validateFlags.baseline, "baseline", "",
		"Suppress findings whose IDs are listed in this file")
	validateCmd.Flags().StringVar(&validateFlags.writeBaseline, "write-baseline", "",
		"Write the IDs of all current findings to this file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	sitePath := args[0]
	verbose := getVerboseFlag(cmd)
	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), verbose)

	projectCfg, err := resolveProjectConfig(cmd, sitePath)
	if err != nil {
		return err
	}
	opts, err := projectCfg.Options()
	if err != nil {
		return err
	}

	colorMode, err := report.ParseColorMode(validateFlags.color)
	if err != nil {
		return fmt.Errorf("%v: %w", err, metaschema.ErrInvalidConfig)
	}

	var baseline report.Baseline
	if validateFlags.baseline != "" {
		baseline, err = report.LoadBaseline(validateFlags.baseline)
		if err != nil {
			return err
		}
		logger.Verbose("Loaded %d baselined finding(s) from %s", len(baseline), validateFlags.baseline)
	}

	all := report.NewCollector()
	kept := report.NewCollector()
	var console *report.Console
	sink := report.Multi{kept}
	if !validateFlags.json {
		console = report.NewConsole(cmd.ErrOrStderr(), colorMode)
		sink = append(sink, console)
	}
	filtered := report.NewFiltered(sink, baseline)

	s := site.New(site.Options{
		ContentExtensions: projectCfg.ContentExtensions,
		DataDir:           projectCfg.DataDir,
		Ignore:            projectCfg.Ignore,
	}, logger)

	if _, err := plugin.Register(s, opts, report.Multi{all, filtered}, logger); err != nil {
		return err
	}

	records, err := s.Run(sitePath)
	if err != nil {
		return err
	}
	logger.Verbose("Validated %d record(s)", records)

	if validateFlags.writeBaseline != "" {
		if err := report.WriteBaseline(validateFlags.writeBaseline, all.Findings()); err != nil {
			return err
		}
		logger.Info("Wrote %d finding ID(s) to %s", len(all.Findings()), validateFlags.writeBaseline)
	}

	findings := kept.Findings()
	if validateFlags.json {
		if err := report.WriteJSON(cmd.OutOrStdout(), findings); err != nil {
			return err
		}
	} else {
		console.Summary(filtered.Suppressed())
	}

	if validateFlags.strict && len(findings) > 0 {
		return fmt.Errorf("%d finding(s) reported: %w", len(findings), metaschema.ErrFindingsReported)
	}
	return nil
}

// resolveProjectConfig layers configuration from lowest to highest priority:
// defaults, metaschema.yaml, METASCHEMA_* environment variables, then flags
// the user set explicitly.
func resolveProjectConfig(cmd *cobra.Command, sitePath string) (*config.ProjectConfig, error) {
	projectCfg, err := config.LoadProject(sitePath)
	if err != nil {
		return nil, err
	}
	projectCfg.ApplyEnv()

	if cmd.Flags().Changed("meta-key") {
		projectCfg.MetaKey = validateFlags.metaKey
	}
	if cmd.Flags().Changed("meta-extension") {
		projectCfg.MetaExtension = validateFlags.metaExtension
	}
	if cmd.Flags().Changed("missing-schema") {
		projectCfg.MissingSchema = validateFlags.missingSchema
	}
	return projectCfg, nil
}
