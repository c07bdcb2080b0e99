package textedit

// Clamp pulls Cursor and the selection endpoints back within [0, Len()],
// and collapses the selection to a point if both endpoints clamp to the
// same value. Call it after any host mutation (an edit can shrink the
// string out from under a stale index) and before any operation that
// reads Cursor/SelectEnd as a trustworthy position.
func Clamp(h Host, s *EditorState) {
	n := h.Len()
	if s.HasSelection() {
		s.SelectStart = max(0, min(s.SelectStart, n))
		s.SelectEnd = max(0, min(s.SelectEnd, n))
		if s.SelectStart == s.SelectEnd {
			s.Cursor = s.SelectStart
		}
	}
	s.Cursor = max(0, min(s.Cursor, n))
}

// SortSelection normalizes SelectStart/SelectEnd into text order. The
// selection is intentionally left un-sorted during an ordinary drag (see
// EditorState.SelectStart) so this is only called where an operation
// needs start <= end.
func SortSelection(s *EditorState) {
	if s.SelectEnd < s.SelectStart {
		s.SelectStart, s.SelectEnd = s.SelectEnd, s.SelectStart
	}
}

// MoveToFirst collapses an active selection to its earlier endpoint and
// moves Cursor there. A no-op when there is no selection.
func MoveToFirst(s *EditorState) {
	if !s.HasSelection() {
		return
	}
	SortSelection(s)
	s.Cursor = s.SelectStart
	s.SelectEnd = s.SelectStart
	s.hasPreferredX = false
}

// MoveToLast collapses an active selection to its later endpoint and
// moves Cursor there. A no-op when there is no selection.
func MoveToLast(h Host, s *EditorState) {
	if !s.HasSelection() {
		return
	}
	SortSelection(s)
	Clamp(h, s)
	s.Cursor = s.SelectEnd
	s.SelectStart = s.SelectEnd
	s.hasPreferredX = false
}

// PrepSelectionAtCursor arms a selection for extension: if none is
// active it starts one anchored at Cursor; if one is already active it
// leaves SelectStart alone and resumes extending from SelectEnd (even if
// SelectEnd is not the side Cursor currently sits on).
func PrepSelectionAtCursor(s *EditorState) {
	if !s.HasSelection() {
		s.SelectStart = s.Cursor
		s.SelectEnd = s.Cursor
		return
	}
	s.Cursor = s.SelectEnd
}

// LineStart walks backward from cursor to the index just after the
// nearest preceding newline (or 0, at the start of the string). In
// single-line mode every index is already at the line start, so it
// returns 0 unconditionally.
func LineStart(h Host, s *EditorState, cursor Index) Index {
	if s.SingleLine {
		return 0
	}
	for cursor > 0 {
		prev := h.PrevIndex(cursor)
		if h.CharAt(prev) == h.Newline() {
			break
		}
		cursor = prev
	}
	return cursor
}

// LineEnd walks forward from cursor to the index of the next newline (or
// Len(), at the end of the string). In single-line mode every index is
// already at the line end, so it returns Len() unconditionally.
func LineEnd(h Host, s *EditorState, cursor Index) Index {
	n := h.Len()
	if s.SingleLine {
		return n
	}
	for cursor < n && h.CharAt(cursor) != h.Newline() {
		cursor = h.NextIndex(cursor)
	}
	return cursor
}
