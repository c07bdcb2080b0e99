package termhost

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/stbtextedit/internal/engine/rope"
	"github.com/dshills/stbtextedit/internal/termhost/layout"
	"github.com/dshills/stbtextedit/internal/textedit"
)

// Field is a textedit.Host backed by a rope.Rope. It owns the document
// text and nothing else — no rendering, no input decoding.
//
// The rope indexes by byte offset; textedit.Host indexes by rune (see
// internal/textedit's doc comment for why). Field converts between the
// two at every method boundary by walking a rope.Cursor from the start
// of the document — acceptable for the editable fields this host is
// built for, not for huge documents (see SPEC_FULL.md's Non-goals).
type Field struct {
	text    rope.Rope
	runeLen int
	metrics layout.Metrics
}

// NewField returns a Field seeded with s.
func NewField(s string) *Field {
	return &Field{
		text:    rope.FromString(s),
		runeLen: utf8.RuneCountInString(s),
		metrics: layout.NewMetrics(8, 0),
	}
}

// SetMetrics installs the layout metrics (tab width, soft-wrap width)
// LayoutRow and Width measure against. A Widget calls this on resize.
func (f *Field) SetMetrics(m layout.Metrics) { f.metrics = m }

// String returns the field's current text.
func (f *Field) String() string { return f.text.String() }

// Len reports the field's length in runes.
func (f *Field) Len() textedit.Index { return textedit.Index(f.runeLen) }

func (f *Field) byteOffset(idx textedit.Index) rope.ByteOffset {
	if idx <= 0 {
		return 0
	}
	if int(idx) >= f.runeLen {
		return f.text.Len()
	}
	c := rope.NewCursor(f.text)
	for i := textedit.Index(0); i < idx; i++ {
		if !c.Next() {
			break
		}
	}
	return c.Offset()
}

// CharAt returns the rune at rune-index i.
func (f *Field) CharAt(i textedit.Index) rune {
	c := rope.NewCursor(f.text)
	c.SeekOffset(f.byteOffset(i))
	r, _ := c.Rune()
	return r
}

// Slice returns the runes in the rune-index range [start, end), for a
// host to copy onto a clipboard register.
func (f *Field) Slice(start, end textedit.Index) []rune {
	if start >= end {
		return nil
	}
	return []rune(f.text.Slice(f.byteOffset(start), f.byteOffset(end)))
}

// restOfLine returns the text from byte offset off through and
// including the next newline (or the end of the document if there is
// none), and whether a newline was found.
func (f *Field) restOfLine(off rope.ByteOffset) (string, bool) {
	end := f.text.Len()
	c := rope.NewCursor(f.text)
	c.SeekOffset(off)
	for {
		r, size := c.Rune()
		if size == 0 {
			break
		}
		if r == '\n' {
			end = c.Offset() + rope.ByteOffset(size)
			return f.text.Slice(off, end), true
		}
		if !c.Next() {
			break
		}
	}
	return f.text.Slice(off, end), false
}

func (f *Field) lineStartIndex(i textedit.Index) textedit.Index {
	c := rope.NewCursor(f.text)
	c.SeekOffset(f.byteOffset(i))
	for i > 0 {
		if !c.Prev() {
			break
		}
		r, _ := c.Rune()
		if r == '\n' {
			break
		}
		i--
	}
	return i
}

// NextIndex advances i by one grapheme cluster, which may span more
// than one rune (combining marks, flag-emoji pairs).
func (f *Field) NextIndex(i textedit.Index) textedit.Index {
	if int(i) >= f.runeLen {
		return textedit.Index(f.runeLen)
	}
	rest, _ := f.restOfLine(f.byteOffset(i))
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
	n := utf8.RuneCountInString(cluster)
	if n == 0 {
		n = 1
	}
	return i + textedit.Index(n)
}

// PrevIndex retreats i by one grapheme cluster.
func (f *Field) PrevIndex(i textedit.Index) textedit.Index {
	if i <= 0 {
		return 0
	}
	start := f.lineStartIndex(i)
	if start >= i {
		return i - 1
	}
	prev, cur := start, start
	for cur < i {
		prev = cur
		cur = f.NextIndex(cur)
	}
	return prev
}

// LayoutRow fills row with the visual row beginning at rune-index i:
// the next soft-wrap segment of the logical line, with the trailing
// newline counted into NumChars only on a line's final segment.
func (f *Field) LayoutRow(row *textedit.Row, i textedit.Index) {
	rest, hasNL := f.restOfLine(f.byteOffset(i))
	line := rest
	if hasNL {
		line = rest[:len(rest)-1]
	}
	rows := layout.LayoutLine(f.metrics, line)
	first := rows[0]

	numChars := first.NumRunes
	if len(rows) == 1 && hasNL {
		numChars++
	}

	row.NumChars = textedit.Index(numChars)
	row.X0 = 0
	row.X1 = float32(first.Width)
	row.Ymin = 0
	row.Ymax = 1
	row.BaselineYDelta = 1
}

// Width returns the display width of the single cluster at rune-index
// rowStart+offset. Tab width depends on the column it falls at; Field
// approximates that column as offset itself, which is exact only when
// every earlier cluster in the row is a single rune one column wide.
func (f *Field) Width(rowStart, offset textedit.Index) float32 {
	idx := rowStart + offset
	if idx < 0 || int(idx) >= f.runeLen {
		return 0
	}
	off := f.byteOffset(idx)
	next := f.NextIndex(idx)
	cluster := f.text.Slice(off, f.byteOffset(next))
	if cluster == "\n" {
		return 0
	}
	return float32(f.metrics.ClusterWidth(cluster, int(offset)))
}

// InsertChars inserts text at rune-index i.
func (f *Field) InsertChars(i textedit.Index, text []rune) bool {
	if i < 0 || int(i) > f.runeLen {
		return false
	}
	if len(text) == 0 {
		return true
	}
	f.text = f.text.Insert(f.byteOffset(i), string(text))
	f.runeLen += len(text)
	return true
}

// DeleteChars deletes n runes starting at rune-index i.
func (f *Field) DeleteChars(i, n textedit.Index) {
	if n <= 0 {
		return
	}
	start := f.byteOffset(i)
	end := f.byteOffset(i + n)
	f.text = f.text.Delete(start, end)
	f.runeLen -= int(n)
}

// KeyToText decodes a Key whose base value is 32 or more as its own
// codepoint, the same convention internal/textedit's tests use; every
// base value below 32 is rejected.
func (f *Field) KeyToText(key textedit.Key) (rune, bool) {
	base := key.Base()
	if base < 32 {
		return 0, false
	}
	return rune(base), true
}

// Newline reports the rune internal/textedit treats as a line break.
func (f *Field) Newline() rune { return '\n' }
