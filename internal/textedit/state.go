package textedit

// EditorState holds everything the engine mutates: cursor and selection
// position, insert-mode flag, paging geometry, and the undo/redo log. It
// is plain data — copyable, JSON-serializable field by field (see
// internal/persist) — and holds no reference to the host's string.
//
// The zero value is not ready to use; call Initialize first.
type EditorState struct {
	// Cursor is the current insertion point.
	Cursor Index

	// SelectStart, SelectEnd are the selection's anchor and head.
	// SelectStart == SelectEnd means no selection. Unlike Cursor, these
	// two are intentionally not kept in ascending order: dragging a
	// selection backward past its anchor leaves SelectEnd < SelectStart,
	// and SortSelection normalizes this only when an operation needs
	// the selection in text order.
	SelectStart Index
	SelectEnd   Index

	// InsertMode, when true, makes Text overwrite the character at the
	// cursor instead of inserting before it (when there is no active
	// selection).
	InsertMode bool

	// RowCountPerPage is how many rows a HandleKey(KeyPageUp/KeyPageDown) call
	// moves the cursor. A host sets this to match its viewport height.
	RowCountPerPage int

	// SingleLine disables multi-row layout: Up/Down/PageUp/PageDown
	// recurse into Left/Right, and newline input is rejected.
	SingleLine bool

	hasPreferredX bool
	preferredX    float32

	undo undoState

	initialized bool
}

// Initialize resets state to an empty selection at index 0, with no
// undo/redo history, ready for use against a Host whose string is
// likewise reset. singleLine fixes EditorState.SingleLine for the
// lifetime of this state — the engine itself does not change it.
func Initialize(state *EditorState, singleLine bool, opts ...Option) {
	cfg := undoConfig{
		recordCapacity: DefaultUndoRecordCapacity,
		charCapacity:   DefaultUndoCharCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.recordCapacity <= 0 {
		cfg.recordCapacity = DefaultUndoRecordCapacity
	}
	if cfg.charCapacity <= 0 {
		cfg.charCapacity = DefaultUndoCharCapacity
	}

	*state = EditorState{
		SingleLine:  singleLine,
		initialized: true,
		undo:        newUndoState(cfg.recordCapacity, cfg.charCapacity),
	}
}

// HasSelection reports whether the selection endpoints differ.
func (s *EditorState) HasSelection() bool {
	return s.SelectStart != s.SelectEnd
}

// UndoCount reports how many undo records are currently retained.
func (s *EditorState) UndoCount() int {
	return s.undo.undoPoint
}

// RedoCount reports how many redo records are currently retained.
func (s *EditorState) RedoCount() int {
	return len(s.undo.records) - s.undo.redoPoint
}
