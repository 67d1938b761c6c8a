// Package plugin wires the meta file parser and the schema validator into a
// site generator host.
package plugin

import (
	"github.com/5t3ph/metaschema/internal/metafile"
	"github.com/5t3ph/metaschema/internal/schema"
	"github.com/5t3ph/metaschema/pkg/metaschema"
)

// Plugin holds the options resolved at registration time together with the
// validator and the reporter findings are sent to.
type Plugin struct {
	opts      metaschema.Options
	validator *schema.Validator
	reporter  metaschema.Reporter
	logger    metaschema.Logger
}

// New resolves opts against the defaults and validates them.
func New(opts metaschema.Options, reporter metaschema.Reporter, logger metaschema.Logger) (*Plugin, error) {
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Plugin{
		opts:      opts,
		validator: schema.NewValidator(opts),
		reporter:  reporter,
		logger:    logger,
	}, nil
}

// Register creates a plugin and registers its data extension handler and its
// validation filter with host.
func Register(host metaschema.Host, opts metaschema.Options, reporter metaschema.Reporter, logger metaschema.Logger) (*Plugin, error) {
	p, err := New(opts, reporter, logger)
	if err != nil {
		return nil, err
	}

	host.AddDataExtension(p.opts.MetaExtension, p.ParseData)
	host.AddFilter(metaschema.FilterName, p.Filter)
	logger.Verbose("Registered .%s data extension and %q filter (meta key %q, missing schema: %s)",
		p.opts.MetaExtension, metaschema.FilterName, p.opts.MetaKey, p.opts.MissingSchema)

	return p, nil
}

// Options returns the resolved options.
func (p *Plugin) Options() metaschema.Options {
	return p.opts
}

// ParseData is the data extension handler. Parse errors propagate to the host.
func (p *Plugin) ParseData(contents, filePath string) (any, error) {
	record, err := metafile.Parse(contents, filePath)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Filter validates one record and hands the findings to the reporter.
// It never fails and never mutates data.
func (p *Plugin) Filter(data metaschema.Record) {
	findings := p.validator.Validate(data)
	if len(findings) > 0 {
		p.logger.Verbose("%s: %d finding(s)", data.InputPath(), len(findings))
	}
	p.reporter.Report(findings)
}

// Validate runs the validator without reporting.
func (p *Plugin) Validate(data metaschema.Record) []metaschema.Finding {
	return p.validator.Validate(data)
}
