package textedit

// Delete removes n character units starting at location, recording the
// deletion in the undo log first so it can be reinstated by Undo.
func Delete(h Host, s *EditorState, location, n Index) {
	makeUndoDelete(h, s, location, n)
	h.DeleteChars(location, n)
	s.hasPreferredX = false
}

// DeleteSelection removes the active selection, if any, and collapses
// Cursor to where it started. A no-op when there is no selection.
func DeleteSelection(h Host, s *EditorState) {
	Clamp(h, s)
	if !s.HasSelection() {
		return
	}
	if s.SelectStart < s.SelectEnd {
		Delete(h, s, s.SelectStart, s.SelectEnd-s.SelectStart)
		s.SelectEnd = s.SelectStart
		s.Cursor = s.SelectStart
	} else {
		Delete(h, s, s.SelectEnd, s.SelectStart-s.SelectEnd)
		s.SelectStart = s.SelectEnd
		s.Cursor = s.SelectEnd
	}
	s.hasPreferredX = false
}

// Cut deletes the active selection and reports whether there was one to
// delete. It does not itself place anything on a clipboard — that is a
// host concern (see §1's explicit external collaborators).
func Cut(h Host, s *EditorState) bool {
	if !s.HasSelection() {
		return false
	}
	DeleteSelection(h, s)
	s.hasPreferredX = false
	return true
}

// Paste deletes the active selection (if any) and inserts text at the
// resulting cursor position, recording an undo record. It reports false,
// leaving the deletion committed, if the host refuses the insertion.
func Paste(h Host, s *EditorState, text []rune) bool {
	length := Index(len(text))
	Clamp(h, s)
	DeleteSelection(h, s)
	if !h.InsertChars(s.Cursor, text) {
		return false
	}
	makeUndoInsert(s, s.Cursor, length)
	s.Cursor += length
	s.hasPreferredX = false
	return true
}

// Text inserts typed text at the cursor. A single newline is rejected
// outright in single-line mode. With an active selection, or outside
// insert mode, it behaves like Paste. In insert mode with no selection
// and the cursor before the end of the string, it overwrites the
// character at the cursor instead of inserting before it.
//
// If the host's InsertChars refuses after an overwrite's DeleteChars (or
// after DeleteSelection) has already run, that deletion is not rolled
// back: this mirrors the original's behavior exactly rather than adding
// a rollback path the reference implementation never had (see
// DESIGN.md's Open Question decisions).
func Text(h Host, s *EditorState, text []rune) {
	if len(text) == 0 {
		return
	}
	if text[0] == h.Newline() && s.SingleLine {
		return
	}
	n := Index(len(text))

	if s.InsertMode && !s.HasSelection() && s.Cursor < h.Len() {
		makeUndoReplace(h, s, s.Cursor, 1, 1)
		h.DeleteChars(s.Cursor, 1)
		if h.InsertChars(s.Cursor, text) {
			s.Cursor += n
			s.hasPreferredX = false
		}
		return
	}

	DeleteSelection(h, s)
	if h.InsertChars(s.Cursor, text) {
		makeUndoInsert(s, s.Cursor, n)
		s.Cursor += n
		s.hasPreferredX = false
	}
}
