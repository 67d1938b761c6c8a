package report

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/5t3ph/metaschema/pkg/metaschema"
)

// Prefix starts every diagnostic line.
const Prefix = "[metaschema]"

// Console renders findings as human-readable colored lines, one per finding.
// It also keeps per-kind counts for the closing summary.
// Safe for concurrent use by multiple goroutines.
type Console struct {
	out    io.Writer
	styles Styles

	mu      sync.Mutex
	records int
	counts  map[metaschema.FindingKind]int
}

// NewConsole creates a console reporter writing to out with the given color mode.
func NewConsole(out io.Writer, mode ColorMode) *Console {
	return &Console{
		out:    out,
		styles: NewStyles(NewRenderer(out, mode)),
		counts: make(map[metaschema.FindingKind]int),
	}
}

// Report writes one line per finding.
func (c *Console) Report(findings []metaschema.Finding) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records++
	for _, f := range findings {
		c.counts[f.Kind]++
		fmt.Fprintf(c.out, "%s %s %s\n",
			c.styles.Prefix.Render(Prefix),
			c.styles.Kind(f.Kind).Render(string(f.Kind)),
			f.Message)
	}
}

// Total returns the number of findings reported so far.
func (c *Console) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Summary writes a closing line with the number of records checked and the
// findings per kind.
func (c *Console) Summary(suppressed int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, n := range c.counts {
		total += n
	}

	if total == 0 {
		fmt.Fprintf(c.out, "%s %s\n", c.styles.Success.Render(SymbolCheck),
			fmt.Sprintf("%d record(s) checked, no metadata findings", c.records))
	} else {
		kinds := make([]string, 0, len(c.counts))
		for k := range c.counts {
			kinds = append(kinds, string(k))
		}
		sort.Strings(kinds)

		fmt.Fprintf(c.out, "%s %d record(s) checked, %d finding(s):\n",
			c.styles.Kind(metaschema.FindingMissingRequired).Render(SymbolCross), c.records, total)
		for _, k := range kinds {
			kind := metaschema.FindingKind(k)
			fmt.Fprintf(c.out, "    %s %d\n", c.styles.Kind(kind).Render(k), c.counts[kind])
		}
	}

	if suppressed > 0 {
		fmt.Fprintln(c.out, c.styles.Muted.Render(fmt.Sprintf("  %d finding(s) suppressed by baseline", suppressed)))
	}
}

var _ metaschema.Reporter = (*Console)(nil)
