package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/5t3ph/metaschema/pkg/metaschema"
)

// Color palette - one color per finding category.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorAccent  = lipgloss.Color("205") // Magenta
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Symbols for visual feedback.
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
	SymbolWarn  = "!"
)

// Styles holds the lipgloss styles used to render findings.
type Styles struct {
	Kinds   map[metaschema.FindingKind]lipgloss.Style
	Prefix  lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds the finding styles on the given renderer so that the
// renderer's color profile decides whether escape codes are emitted.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Kinds: map[metaschema.FindingKind]lipgloss.Style{
			metaschema.FindingMissingRequired: r.NewStyle().Foreground(ColorError).Bold(true),
			metaschema.FindingTypeMismatch:    r.NewStyle().Foreground(ColorWarning),
			metaschema.FindingInvalidKey:      r.NewStyle().Foreground(ColorAccent),
			metaschema.FindingMisplacedKey:    r.NewStyle().Foreground(ColorPrimary),
			metaschema.FindingMissingSchema:   r.NewStyle().Foreground(ColorMuted),
			metaschema.FindingInvalidSchema:   r.NewStyle().Foreground(ColorError),
		},
		Prefix:  r.NewStyle().Foreground(ColorMuted),
		Success: r.NewStyle().Foreground(ColorSuccess),
		Muted:   r.NewStyle().Foreground(ColorMuted),
	}
}

// Kind returns the style for a finding kind, falling back to the muted style.
func (s Styles) Kind(kind metaschema.FindingKind) lipgloss.Style {
	if style, ok := s.Kinds[kind]; ok {
		return style
	}
	return s.Muted
}
