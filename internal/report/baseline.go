package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/5t3ph/metaschema/pkg/metaschema"
)

// Baseline is a set of finding IDs that are known and accepted.
type Baseline map[uuid.UUID]struct{}

// baselineFile is the on-disk format of a baseline.
type baselineFile struct {
	Findings []uuid.UUID `json:"findings"`
}

// LoadBaseline reads a baseline file. A missing file yields an empty baseline.
func LoadBaseline(path string) (Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Baseline{}, nil
		}
		return nil, fmt.Errorf("failed to read baseline %s: %w", path, err)
	}

	var file baselineFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid baseline %s: %v: %w", path, err, metaschema.ErrInvalidConfig)
	}

	b := make(Baseline, len(file.Findings))
	for _, id := range file.Findings {
		b[id] = struct{}{}
	}
	return b, nil
}

// Contains reports whether the finding is part of the baseline.
func (b Baseline) Contains(f metaschema.Finding) bool {
	_, ok := b[f.ID]
	return ok
}

// Filter returns the findings not in the baseline and how many were dropped.
func (b Baseline) Filter(findings []metaschema.Finding) ([]metaschema.Finding, int) {
	if len(b) == 0 {
		return findings, 0
	}
	var kept []metaschema.Finding
	suppressed := 0
	for _, f := range findings {
		if b.Contains(f) {
			suppressed++
			continue
		}
		kept = append(kept, f)
	}
	return kept, suppressed
}

// WriteBaseline stores the IDs of findings as a baseline file, sorted for stable diffs.
func WriteBaseline(path string, findings []metaschema.Finding) error {
	seen := make(map[uuid.UUID]bool, len(findings))
	ids := make([]uuid.UUID, 0, len(findings))
	for _, f := range findings {
		if seen[f.ID] {
			continue
		}
		seen[f.ID] = true
		ids = append(ids, f.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	data, err := json.MarshalIndent(baselineFile{Findings: ids}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write baseline %s: %w", path, err)
	}
	return nil
}

// Filtered wraps a reporter and drops findings contained in a baseline.
type Filtered struct {
	next     metaschema.Reporter
	baseline Baseline

	suppressed int
}

// NewFiltered returns a reporter that forwards only findings outside baseline.
func NewFiltered(next metaschema.Reporter, baseline Baseline) *Filtered {
	return &Filtered{next: next, baseline: baseline}
}

// Report forwards the findings that are not baselined.
func (f *Filtered) Report(findings []metaschema.Finding) {
	kept, n := f.baseline.Filter(findings)
	f.suppressed += n
	f.next.Report(kept)
}

// Suppressed returns the number of findings dropped so far.
func (f *Filtered) Suppressed() int {
	return f.suppressed
}

var _ metaschema.Reporter = (*Filtered)(nil)
