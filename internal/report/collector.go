package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/5t3ph/metaschema/pkg/metaschema"
)

// Collector accumulates findings instead of rendering them, for machine-readable output.
// Safe for concurrent use by multiple goroutines.
type Collector struct {
	mu       sync.Mutex
	findings []metaschema.Finding
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{findings: []metaschema.Finding{}}
}

// Report appends findings.
func (c *Collector) Report(findings []metaschema.Finding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.findings = append(c.findings, findings...)
}

// Findings returns a copy of everything collected so far.
func (c *Collector) Findings() []metaschema.Finding {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]metaschema.Finding{}, c.findings...)
}

// WriteJSON writes findings as an indented JSON array.
func WriteJSON(w io.Writer, findings []metaschema.Finding) error {
	if findings == nil {
		findings = []metaschema.Finding{}
	}
	data, err := json.MarshalIndent(findings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal findings: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

var _ metaschema.Reporter = (*Collector)(nil)

// Multi fans every Report call out to several reporters, in order.
type Multi []metaschema.Reporter

// Report forwards findings to each reporter.
func (m Multi) Report(findings []metaschema.Finding) {
	for _, r := range m {
		r.Report(findings)
	}
}

var _ metaschema.Reporter = Multi(nil)
