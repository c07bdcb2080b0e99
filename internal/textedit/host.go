package textedit

// Index addresses one character unit in the host's string. The engine
// never interprets an Index beyond comparing and arithmetic on it; the
// host defines what it means (a rune position is the expected choice —
// see Host.NextIndex). Index units must correspond 1:1 with the slots
// the undo/redo log allocates in its character-storage array, so a host
// backed by variable-width encoding must not use raw byte offsets.
type Index = int

// Host is every capability the engine needs from its caller but does not
// own: string storage, layout, display width, and key decoding. The
// engine holds a Host only for the duration of a single call; it never
// retains one between operations.
type Host interface {
	// Len reports the number of character units in the string.
	Len() Index

	// CharAt returns the character unit at index i. The engine calls
	// this only for 0 <= i < Len().
	CharAt(i Index) rune

	// NextIndex returns the index one character unit after i, or Len()
	// if i is the last unit. For a fixed-width host this is i+1; a
	// variable-width host (grapheme clusters, surrogate pairs) may skip
	// more than one underlying storage unit, as long as
	// NextIndex(PrevIndex(i)) == i wherever both are defined.
	NextIndex(i Index) Index

	// PrevIndex returns the index one character unit before i. The
	// engine calls this only for i > 0.
	PrevIndex(i Index) Index

	// LayoutRow fills row with the layout of the visual row starting at
	// index i: horizontal extent (X0, X1), vertical extent relative to
	// the row's own baseline (Ymin, Ymax), the vertical delta to the
	// next row's baseline (BaselineYDelta), and how many character
	// units the row spans (NumChars). The engine never caches a row
	// across calls; it re-derives layout on demand.
	LayoutRow(row *Row, i Index)

	// Width returns the display width contributed by character unit
	// rowStart+offset, where rowStart is the index a prior LayoutRow
	// call started from and offset is relative to it. Hosts backed by
	// grapheme clusters may return 0 for interior units of a cluster
	// and the full cluster width on its first unit.
	Width(rowStart, offset Index) float32

	// InsertChars inserts text at index i and reports whether the host
	// accepted the insertion. A host may refuse (e.g. a length cap);
	// the engine does not retry or roll back a refusal on its own.
	InsertChars(i Index, text []rune) bool

	// DeleteChars removes n character units starting at index i. Unlike
	// InsertChars this has no failure signal: a host that owns its
	// storage can always shrink it.
	DeleteChars(i, n Index)

	// KeyToText decodes a key code the engine does not otherwise
	// recognize into literal text, or reports ok=false if the key has
	// no text representation (e.g. a function key).
	KeyToText(key Key) (r rune, ok bool)

	// Newline returns the character unit the host uses as a line
	// separator. Single-character-unit hosts return '\n'.
	Newline() rune
}
