// Package layout computes visual row layout and display width for
// internal/termhost, the way internal/renderer/layout does for the full
// renderer pipeline: grapheme-cluster boundaries and display width via
// rivo/uniseg, with fullwidth/halfwidth forms folded to a consistent
// width via golang.org/x/text/width before measuring.
//
// Unlike internal/renderer/layout.LineLayout, this package has no
// column-mapping or dirty-region tracking: termhost re-lays-out a line
// on every textedit.Host.LayoutRow call, matching the engine's own
// "never cache a layout" contract (see internal/textedit's doc comment).
package layout
