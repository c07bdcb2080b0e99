package textedit

// undoRecord describes one undoable edit by what reverting it takes: at
// location, delete deleteLength characters and reinsert insertLength
// characters, which are stashed in undoState.chars starting at
// charStorage. charStorage is -1 when there is nothing to reinsert (a
// record that reverts a pure insertion has nothing to stash).
type undoRecord struct {
	location      Index
	insertLength  Index
	deleteLength  Index
	charStorage   int
}

// undoState is the fixed-capacity dual ring buffer behind EditorState's
// undo/redo log: undo records grow from the front of records/chars,
// redo records grow from the back, and the two meet in the middle.
// Both slices are sized once in newUndoState and never resized — the
// closest Go gets to the original's fixed-size C arrays (see
// options.go's doc comment on why a slice, not an array, stands in for
// that).
type undoState struct {
	records []undoRecord
	chars   []rune

	undoPoint     int
	redoPoint     int
	undoCharPoint int
	redoCharPoint int
}

func newUndoState(recordCapacity, charCapacity int) undoState {
	return undoState{
		records:       make([]undoRecord, recordCapacity),
		chars:         make([]rune, charCapacity),
		redoPoint:     recordCapacity,
		redoCharPoint: charCapacity,
	}
}

// flushRedo discards the entire redo log. Any new edit invalidates every
// redo record, since redo would otherwise reapply an edit against text
// that edit no longer describes.
func (u *undoState) flushRedo() {
	u.redoPoint = len(u.records)
	u.redoCharPoint = len(u.chars)
}

// discardUndo evicts the single oldest undo record to make room, sliding
// every remaining record down by one slot. If the evicted record owned
// character storage, the remaining stashed characters and every
// remaining record's charStorage offset slide down by its insertLength.
func (u *undoState) discardUndo() {
	if u.undoPoint <= 0 {
		return
	}
	if u.records[0].charStorage >= 0 {
		n := u.records[0].insertLength
		u.undoCharPoint -= n
		copy(u.chars[:u.undoCharPoint], u.chars[n:n+u.undoCharPoint])
		for i := 0; i < u.undoPoint; i++ {
			if u.records[i].charStorage >= 0 {
				u.records[i].charStorage -= n
			}
		}
	}
	u.undoPoint--
	copy(u.records[:u.undoPoint], u.records[1:u.undoPoint+1])
}

// discardRedo evicts the single oldest redo record (the one in the last
// slot of records, since redo records grow from the back) to make room,
// sliding every remaining redo record up by one slot toward the back. If
// the evicted record owned character storage, the remaining stashed redo
// characters and their charStorage offsets slide up by its insertLength.
func (u *undoState) discardRedo() {
	k := len(u.records) - 1
	if u.redoPoint > k {
		return
	}
	if u.records[k].charStorage >= 0 {
		n := u.records[k].insertLength
		u.redoCharPoint += n
		count := len(u.chars) - u.redoCharPoint
		copy(u.chars[u.redoCharPoint:u.redoCharPoint+count], u.chars[u.redoCharPoint-n:u.redoCharPoint-n+count])
		for i := u.redoPoint; i < k; i++ {
			if u.records[i].charStorage >= 0 {
				u.records[i].charStorage += n
			}
		}
	}
	moveCount := len(u.records) - u.redoPoint - 1
	if moveCount > 0 {
		copy(u.records[u.redoPoint+1:u.redoPoint+1+moveCount], u.records[u.redoPoint:u.redoPoint+moveCount])
	}
	u.redoPoint++
}

// createRecord reserves the next undo record slot, discarding the whole
// redo log and evicting the oldest undo records as needed to make room
// for numChars of character storage. It reports ok=false — resetting the
// entire undo log to empty — if numChars alone exceeds total char
// capacity; see DESIGN.md's Open Question decisions for why this is the
// original's behavior, not a simplification.
func (u *undoState) createRecord(numChars Index) (index int, ok bool) {
	u.flushRedo()

	if u.undoPoint == len(u.records) {
		u.discardUndo()
	}

	if numChars > len(u.chars) {
		u.undoPoint = 0
		u.undoCharPoint = 0
		return 0, false
	}

	for u.undoCharPoint+numChars > len(u.chars) {
		u.discardUndo()
	}

	idx := u.undoPoint
	u.undoPoint++
	return idx, true
}

// createUndo reserves a record for an edit at pos that Undo reverts by
// deleting deleteLen characters and reinserting insertLen, returning a
// slice to fill with the insertLen characters Undo must reinsert, or nil
// if there is nothing to stash or capacity ran out.
func (u *undoState) createUndo(pos, insertLen, deleteLen Index) []rune {
	idx, ok := u.createRecord(insertLen)
	if !ok {
		return nil
	}

	r := &u.records[idx]
	r.location = pos
	r.insertLength = insertLen
	r.deleteLength = deleteLen

	if insertLen == 0 {
		r.charStorage = -1
		return nil
	}

	point := u.undoCharPoint
	r.charStorage = point
	u.undoCharPoint += insertLen
	return u.chars[point : point+insertLen]
}

func makeUndoInsert(s *EditorState, location, length Index) {
	s.undo.createUndo(location, 0, length)
}

func makeUndoDelete(h Host, s *EditorState, location, length Index) {
	buf := s.undo.createUndo(location, length, 0)
	for i := Index(0); i < len(buf); i++ {
		buf[i] = h.CharAt(location + i)
	}
}

func makeUndoReplace(h Host, s *EditorState, location, oldLength, newLength Index) {
	buf := s.undo.createUndo(location, oldLength, newLength)
	for i := Index(0); i < len(buf); i++ {
		buf[i] = h.CharAt(location + i)
	}
}

// Undo reverts the most recent undo record, if any, pushing its inverse
// onto the redo log. A no-op when the undo log is empty.
func Undo(h Host, s *EditorState) {
	u := &s.undo
	if u.undoPoint == 0 {
		return
	}

	rec := u.records[u.undoPoint-1]
	r := &u.records[u.redoPoint-1]
	r.charStorage = -1
	r.insertLength = rec.deleteLength
	r.deleteLength = rec.insertLength
	r.location = rec.location

	if rec.deleteLength != 0 {
		if u.undoCharPoint+rec.deleteLength >= len(u.chars) {
			r.insertLength = 0
		} else {
			for u.undoCharPoint+rec.deleteLength > u.redoCharPoint {
				if u.redoPoint == len(u.records) {
					return
				}
				u.discardRedo()
			}
			r = &u.records[u.redoPoint-1]
			r.charStorage = u.redoCharPoint - rec.deleteLength
			u.redoCharPoint -= rec.deleteLength
			for i := Index(0); i < rec.deleteLength; i++ {
				u.chars[r.charStorage+i] = h.CharAt(rec.location + i)
			}
		}
		h.DeleteChars(rec.location, rec.deleteLength)
	}

	if rec.insertLength != 0 {
		h.InsertChars(rec.location, u.chars[rec.charStorage:rec.charStorage+rec.insertLength])
		u.undoCharPoint -= rec.insertLength
	}

	s.Cursor = rec.location + rec.insertLength
	u.undoPoint--
	u.redoPoint--
}

// Redo reapplies the most recently undone record, if any, pushing its
// inverse back onto the undo log. A no-op when the redo log is empty.
func Redo(h Host, s *EditorState) {
	u := &s.undo
	if u.redoPoint == len(u.records) {
		return
	}

	rec := u.records[u.redoPoint]
	nu := &u.records[u.undoPoint]
	nu.deleteLength = rec.insertLength
	nu.insertLength = rec.deleteLength
	nu.location = rec.location
	nu.charStorage = -1

	if rec.deleteLength != 0 {
		if u.undoCharPoint+nu.insertLength > u.redoCharPoint {
			nu.insertLength = 0
			nu.deleteLength = 0
		} else {
			nu.charStorage = u.undoCharPoint
			u.undoCharPoint += nu.insertLength
			for i := Index(0); i < nu.insertLength; i++ {
				u.chars[nu.charStorage+i] = h.CharAt(nu.location + i)
			}
		}
		h.DeleteChars(rec.location, rec.deleteLength)
	}

	if rec.insertLength != 0 {
		h.InsertChars(rec.location, u.chars[rec.charStorage:rec.charStorage+rec.insertLength])
		u.redoCharPoint += rec.insertLength
	}

	s.Cursor = rec.location + rec.insertLength
	u.undoPoint++
	u.redoPoint++
}
