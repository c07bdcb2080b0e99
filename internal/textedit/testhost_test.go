package textedit

// testHost is a minimal Host backed by a plain []rune buffer: one
// character unit per rune, one row per line, one unit of width per
// non-newline character and zero for newline. It exists only to drive
// the engine's own tests — internal/termhost is the real, uniseg-aware
// Host implementation.
type testHost struct {
	buf []rune
}

func newTestHost(s string) *testHost {
	return &testHost{buf: []rune(s)}
}

func (h *testHost) String() string { return string(h.buf) }

func (h *testHost) Len() Index { return len(h.buf) }

func (h *testHost) CharAt(i Index) rune { return h.buf[i] }

func (h *testHost) NextIndex(i Index) Index {
	if i >= len(h.buf) {
		return len(h.buf)
	}
	return i + 1
}

func (h *testHost) PrevIndex(i Index) Index {
	if i <= 0 {
		return 0
	}
	return i - 1
}

func (h *testHost) Width(rowStart, offset Index) float32 {
	idx := rowStart + offset
	if idx < 0 || idx >= len(h.buf) {
		return 0
	}
	if h.buf[idx] == '\n' {
		return 0
	}
	return 1
}

func (h *testHost) LayoutRow(row *Row, i Index) {
	n := len(h.buf)
	end := i
	for end < n && h.buf[end] != '\n' {
		end++
	}
	numChars := end - i
	if end < n {
		numChars++ // include the newline itself in the row
	}
	row.NumChars = numChars
	row.Ymin = 0
	row.Ymax = 1
	row.BaselineYDelta = 1
	row.X0 = 0
	x := float32(0)
	for k := 0; k < numChars; k++ {
		x += h.Width(i, k)
	}
	row.X1 = x
}

func (h *testHost) InsertChars(i Index, text []rune) bool {
	buf := make([]rune, 0, len(h.buf)+len(text))
	buf = append(buf, h.buf[:i]...)
	buf = append(buf, text...)
	buf = append(buf, h.buf[i:]...)
	h.buf = buf
	return true
}

func (h *testHost) DeleteChars(i, n Index) {
	buf := make([]rune, 0, len(h.buf)-n)
	buf = append(buf, h.buf[:i]...)
	buf = append(buf, h.buf[i+n:]...)
	h.buf = buf
}

func (h *testHost) KeyToText(key Key) (rune, bool) {
	base := key.Base()
	if base < 32 {
		return 0, false
	}
	return rune(base), true
}

func (h *testHost) Newline() rune { return '\n' }

// rejectingHost wraps a testHost and refuses every InsertChars call, to
// exercise the "host rejects insertion" paths of Paste/Text.
type rejectingHost struct {
	*testHost
}

func (h *rejectingHost) InsertChars(i Index, text []rune) bool { return false }
