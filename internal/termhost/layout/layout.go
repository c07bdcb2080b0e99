package layout

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/width"
)

// TabExpander computes tab-stop columns, grounded on
// internal/renderer/layout.TabExpander's column-based model: a tab's
// width depends on where it falls, not a fixed constant.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander returns a TabExpander with the given stop width,
// defaulting to 8 (matching most terminals) for tabWidth < 1.
func NewTabExpander(tabWidth int) TabExpander {
	if tabWidth < 1 {
		tabWidth = 8
	}
	return TabExpander{tabWidth: tabWidth}
}

// NextTabStop returns the next tab stop column after col.
func (t TabExpander) NextTabStop(col int) int {
	return col + t.tabWidth - (col % t.tabWidth)
}

// Metrics configures row layout: tab expansion and an optional soft-wrap
// width (WrapWidth <= 0 disables wrapping — a row extends the full
// line).
type Metrics struct {
	Tabs      TabExpander
	WrapWidth int
}

// NewMetrics returns Metrics with the given tab width and wrap width (0
// disables soft wrap).
func NewMetrics(tabWidth, wrapWidth int) Metrics {
	return Metrics{Tabs: NewTabExpander(tabWidth), WrapWidth: wrapWidth}
}

// ClusterWidth returns the display width of one grapheme cluster at
// visual column col (column only matters for '\t'), folding
// fullwidth/halfwidth forms to a narrow width first so a fullwidth
// Latin letter and its halfwidth counterpart measure the same.
func (m Metrics) ClusterWidth(cluster string, col int) int {
	if cluster == "\t" {
		return m.Tabs.NextTabStop(col) - col
	}
	folded := width.Fold.String(cluster)
	return uniseg.StringWidth(folded)
}

// Row is one laid-out visual row, in rune-index units: it spans
// NumRunes runes of its line and measures Width columns wide.
type Row struct {
	NumRunes int
	Width    int
}

// LayoutLine splits one logical line (no embedded newline) into Row
// segments. With WrapWidth <= 0 it always returns exactly one Row
// spanning the whole line, even an empty one.
func LayoutLine(m Metrics, line string) []Row {
	if line == "" {
		return []Row{{}}
	}

	var rows []Row
	curRunes, curWidth, col := 0, 0, 0

	flush := func() {
		rows = append(rows, Row{NumRunes: curRunes, Width: curWidth})
		curRunes, curWidth, col = 0, 0, 0
	}

	g := uniseg.NewGraphemes(line)
	for g.Next() {
		cluster := g.Str()
		cw := m.ClusterWidth(cluster, col)
		if m.WrapWidth > 0 && curRunes > 0 && col+cw > m.WrapWidth {
			flush()
		}
		curRunes += utf8.RuneCountInString(cluster)
		curWidth += cw
		col += cw
	}
	flush()
	return rows
}
