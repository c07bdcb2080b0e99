package textedit

// Click places the cursor at the character nearest (x, y) and collapses
// any selection. In single-line mode y is forced to the single row's
// Ymin so a click anywhere in a tall single-line field still lands in
// the text.
func Click(h Host, s *EditorState, x, y float32) {
	if s.SingleLine {
		var r Row
		h.LayoutRow(&r, 0)
		y = r.Ymin
	}
	idx, _ := LocateCoord(h, x, y)
	s.Cursor = idx
	s.SelectStart = idx
	s.SelectEnd = idx
	s.hasPreferredX = false
}

// Drag extends the selection from wherever Click last anchored it to the
// character nearest (x, y). Call it on every pointer-move event between
// a Click and the matching pointer-up.
func Drag(h Host, s *EditorState, x, y float32) {
	if s.SingleLine {
		var r Row
		h.LayoutRow(&r, 0)
		y = r.Ymin
	}
	if s.SelectStart == s.SelectEnd {
		s.SelectStart = s.Cursor
	}
	idx, _ := LocateCoord(h, x, y)
	s.Cursor = idx
	s.SelectEnd = idx
}
