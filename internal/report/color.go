package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode selects when findings are rendered with ANSI colors.
type ColorMode string

const (
	// ColorAuto colors output only when writing to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces ANSI colors.
	ColorAlways ColorMode = "always"
	// ColorNever disables ANSI colors.
	ColorNever ColorMode = "never"
)

// ParseColorMode converts a flag value to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (valid: auto, always, never)", s)
	}
}

// DetectColor determines whether output written to w should be colored.
//
// Returns false if:
//   - NO_COLOR is set (https://no-color.org)
//   - TERM is "dumb"
//   - w is not a terminal
//
// Returns true otherwise.
func DetectColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// NewRenderer returns a lipgloss renderer for w whose color profile follows mode.
func NewRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)

	var colored bool
	switch mode {
	case ColorAlways:
		colored = true
	case ColorNever:
		colored = false
	default:
		colored = DetectColor(w)
	}

	if colored {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
