package textedit

// Key is an opaque key code the host decodes from its own input events
// (a terminal escape sequence, a GUI keydown event) into the engine's
// vocabulary. KeyShift ORs into any of the named commands below to
// request its selection-extending variant, the same shift-bit-in-the-
// key-code convention used by input/key.Key/Modifier elsewhere in this
// codebase.
type Key uint32

// KeyShift, when ORed into a command key, extends the selection instead
// of collapsing it.
const KeyShift Key = 1 << 20

// Command keys the dispatcher recognizes. Any other value is passed to
// Host.KeyToText for literal-text decoding.
const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyLineStart
	KeyLineEnd
	KeyTextStart
	KeyTextEnd
	KeyDelete
	KeyBackspace
	KeyUndo
	KeyRedo
	// KeyToggleInsert flips EditorState.InsertMode. It corresponds to
	// STB_TEXTEDIT_K_INSERT, present in the original's key vocabulary
	// but commented out of its default key map; InsertMode is a public
	// field here, so a host wiring an Insert key is a reasonable use of
	// it rather than a new capability.
	KeyToggleInsert
)

// WithShift returns k with KeyShift set.
func (k Key) WithShift() Key { return k | KeyShift }

// Base returns k with KeyShift cleared.
func (k Key) Base() Key { return k &^ KeyShift }

// Shifted reports whether KeyShift is set on k.
func (k Key) Shifted() bool { return k&KeyShift != 0 }

// HandleKey dispatches a single key press against state. Most commands
// are O(1); Up/Down walk one row and PageUp/PageDown walk RowCountPerPage
// rows via Host.LayoutRow and Host.Width. An unrecognized key is passed to
// Host.KeyToText and, if decoded, inserted via Text.
func HandleKey(h Host, s *EditorState, key Key) {
	base := key.Base()
	shifted := key.Shifted()

	switch base {
	case KeyUndo:
		Undo(h, s)
		s.hasPreferredX = false

	case KeyRedo:
		Redo(h, s)
		s.hasPreferredX = false

	case KeyLeft:
		handleLeft(h, s, shifted)

	case KeyRight:
		handleRight(h, s, shifted)

	case KeyDown, KeyPageDown:
		handleDown(h, s, key)

	case KeyUp, KeyPageUp:
		handleUp(h, s, key)

	case KeyDelete:
		handleDelete(h, s)

	case KeyBackspace:
		handleBackspace(h, s)

	case KeyTextStart:
		handleTextStart(h, s, shifted)

	case KeyTextEnd:
		handleTextEnd(h, s, shifted)

	case KeyLineStart:
		handleLineStart(h, s, shifted)

	case KeyLineEnd:
		handleLineEnd(h, s, shifted)

	case KeyToggleInsert:
		s.InsertMode = !s.InsertMode

	default:
		if r, ok := h.KeyToText(key); ok {
			Text(h, s, []rune{r})
		}
	}
}

func handleLeft(h Host, s *EditorState, shifted bool) {
	if !shifted {
		if s.HasSelection() {
			MoveToFirst(s)
		} else if s.Cursor > 0 {
			s.Cursor = h.PrevIndex(s.Cursor)
		}
		s.hasPreferredX = false
		return
	}
	Clamp(h, s)
	PrepSelectionAtCursor(s)
	if s.SelectEnd > 0 {
		s.SelectEnd = h.PrevIndex(s.SelectEnd)
	}
	s.Cursor = s.SelectEnd
	s.hasPreferredX = false
}

func handleRight(h Host, s *EditorState, shifted bool) {
	if !shifted {
		if s.HasSelection() {
			MoveToLast(h, s)
		} else {
			s.Cursor = h.NextIndex(s.Cursor)
		}
		Clamp(h, s)
		s.hasPreferredX = false
		return
	}
	PrepSelectionAtCursor(s)
	s.SelectEnd = h.NextIndex(s.SelectEnd)
	Clamp(h, s)
	s.Cursor = s.SelectEnd
	s.hasPreferredX = false
}

func handleDelete(h Host, s *EditorState) {
	if s.HasSelection() {
		DeleteSelection(h, s)
	} else if n := h.Len(); s.Cursor < n {
		Delete(h, s, s.Cursor, h.NextIndex(s.Cursor)-s.Cursor)
	}
	s.hasPreferredX = false
}

func handleBackspace(h Host, s *EditorState) {
	if s.HasSelection() {
		DeleteSelection(h, s)
	} else {
		Clamp(h, s)
		if s.Cursor > 0 {
			prev := h.PrevIndex(s.Cursor)
			Delete(h, s, prev, s.Cursor-prev)
			s.Cursor = prev
		}
	}
	s.hasPreferredX = false
}

func handleTextStart(h Host, s *EditorState, shifted bool) {
	if !shifted {
		s.Cursor, s.SelectStart, s.SelectEnd = 0, 0, 0
	} else {
		PrepSelectionAtCursor(s)
		s.Cursor = 0
		s.SelectEnd = 0
	}
	s.hasPreferredX = false
}

func handleTextEnd(h Host, s *EditorState, shifted bool) {
	n := h.Len()
	if !shifted {
		s.Cursor = n
		s.SelectStart, s.SelectEnd = 0, 0
	} else {
		PrepSelectionAtCursor(s)
		s.Cursor = n
		s.SelectEnd = n
	}
	s.hasPreferredX = false
}

func handleLineStart(h Host, s *EditorState, shifted bool) {
	Clamp(h, s)
	if !shifted {
		MoveToFirst(s)
		s.Cursor = LineStart(h, s, s.Cursor)
	} else {
		PrepSelectionAtCursor(s)
		s.Cursor = LineStart(h, s, s.Cursor)
		s.SelectEnd = s.Cursor
	}
	s.hasPreferredX = false
}

func handleLineEnd(h Host, s *EditorState, shifted bool) {
	Clamp(h, s)
	if !shifted {
		MoveToLast(h, s)
		s.Cursor = LineEnd(h, s, s.Cursor)
	} else {
		PrepSelectionAtCursor(s)
		s.Cursor = LineEnd(h, s, s.Cursor)
		s.SelectEnd = s.Cursor
	}
	s.hasPreferredX = false
}

// handleDown implements Down and PageDown: single-line state recurses
// into Right (the original's literal translate-and-redispatch), and
// multi-line state walks rowCount rows forward, tracking a "preferred x"
// column the way every text editor's vertical motion does.
func handleDown(h Host, s *EditorState, key Key) {
	shifted := key.Shifted()
	isPage := key.Base() == KeyPageDown

	if s.SingleLine {
		right := KeyRight
		if shifted {
			right = right.WithShift()
		}
		HandleKey(h, s, right)
		return
	}

	rowCount := 1
	if isPage {
		rowCount = s.RowCountPerPage
	}

	if shifted {
		PrepSelectionAtCursor(s)
	} else if s.HasSelection() {
		MoveToLast(h, s)
	}
	Clamp(h, s)

	find := FindCharPos(h, s.Cursor, s.SingleLine)

	for j := 0; j < rowCount; j++ {
		if find.Length == 0 {
			break
		}

		goalX := find.X
		if s.hasPreferredX {
			goalX = s.preferredX
		}

		start := find.FirstChar + find.Length
		s.Cursor = start

		var row Row
		h.LayoutRow(&row, s.Cursor)
		x := row.X0
		for i := Index(0); i < row.NumChars; {
			x += h.Width(start, i)
			next := h.NextIndex(s.Cursor)
			if x > goalX {
				break
			}
			i += next - s.Cursor
			s.Cursor = next
		}
		Clamp(h, s)

		s.hasPreferredX = true
		s.preferredX = goalX

		if shifted {
			s.SelectEnd = s.Cursor
		}

		find.FirstChar += find.Length
		find.Length = row.NumChars
	}
}

// handleUp is handleDown's mirror: it walks rowCount rows backward using
// FindState.PrevFirst, re-deriving the row before that with LineStart so
// it never rescans from the top of the document.
func handleUp(h Host, s *EditorState, key Key) {
	shifted := key.Shifted()
	isPage := key.Base() == KeyPageUp

	if s.SingleLine {
		left := KeyLeft
		if shifted {
			left = left.WithShift()
		}
		HandleKey(h, s, left)
		return
	}

	rowCount := 1
	if isPage {
		rowCount = s.RowCountPerPage
	}

	if shifted {
		PrepSelectionAtCursor(s)
	} else if s.HasSelection() {
		MoveToFirst(s)
	}
	Clamp(h, s)

	find := FindCharPos(h, s.Cursor, s.SingleLine)

	for j := 0; j < rowCount; j++ {
		if find.PrevFirst == find.FirstChar {
			break
		}

		goalX := find.X
		if s.hasPreferredX {
			goalX = s.preferredX
		}

		s.Cursor = find.PrevFirst

		var row Row
		h.LayoutRow(&row, s.Cursor)
		x := row.X0
		for i := Index(0); i < row.NumChars; {
			x += h.Width(find.PrevFirst, i)
			next := h.NextIndex(s.Cursor)
			if x > goalX {
				break
			}
			i += next - s.Cursor
			s.Cursor = next
		}
		Clamp(h, s)

		s.hasPreferredX = true
		s.preferredX = goalX

		if shifted {
			s.SelectEnd = s.Cursor
		}

		prevScan := Index(0)
		if find.PrevFirst > 0 {
			prevScan = h.PrevIndex(find.PrevFirst)
		}
		for prevScan > 0 {
			prev := h.PrevIndex(prevScan)
			if h.CharAt(prev) == h.Newline() {
				break
			}
			prevScan = prev
		}

		find.FirstChar = find.PrevFirst
		find.PrevFirst = LineStart(h, s, prevScan)
	}
}
