package textedit

// Row describes the layout of one visual row (a line, or one soft-wrap
// segment of a line), as reported by Host.LayoutRow. It is transient:
// the engine fills a Row on the stack for the duration of a single
// traversal step and never stores one in EditorState.
type Row struct {
	// X0, X1 are the row's horizontal extent.
	X0, X1 float32

	// BaselineYDelta is the vertical distance from this row's baseline
	// to the next row's baseline.
	BaselineYDelta float32

	// Ymin, Ymax bound the row's glyphs relative to its own baseline.
	Ymin, Ymax float32

	// NumChars is how many character units this row spans.
	NumChars Index
}

// FindState is the result of locating a character index's on-screen
// position, returned by FindCharPos. Like Row, it is transient.
type FindState struct {
	// X, Y is the on-screen position of the located character.
	X, Y float32

	// Height is the row's height (Ymax - Ymin).
	Height float32

	// FirstChar is the index of the first character unit of the row
	// the located character falls in.
	FirstChar Index

	// Length is how many character units that row spans.
	Length Index

	// PrevFirst is the index of the first character unit of the row
	// before FirstChar, used to walk upward without re-scanning from
	// the start of the string.
	PrevFirst Index
}
