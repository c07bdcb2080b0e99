package textedit

// FindCharPos is LocateCoord's inverse: given a character index n, it
// returns the on-screen position and containing row. singleLine mirrors
// EditorState.SingleLine so the single-row shortcut can be taken without
// a Host round-trip when n sits exactly at the end of the text.
//
// Three cases need care:
//
//   - n == Len() in single-line mode: the caret sits one past the last
//     character on the only row, with no further row to lay out.
//   - n == Len() for a string whose last line has no trailing newline:
//     the final LayoutRow call reports that row's real extent, and the
//     loop must stop there rather than walking past it into a row that
//     does not exist.
//   - n == Len() for a string whose last character is a newline: the
//     caret sits on a new, empty row past the newline, which this
//     function synthesizes (num_chars forced to 0) rather than asking
//     the host to lay out a row that has no characters.
func FindCharPos(h Host, n Index, singleLine bool) FindState {
	z := h.Len()

	if n == z && singleLine {
		var r Row
		h.LayoutRow(&r, 0)
		return FindState{
			X:         r.X1,
			Y:         0,
			Height:    r.Ymax - r.Ymin,
			FirstChar: 0,
			Length:    z,
			PrevFirst: 0,
		}
	}

	var r Row
	prevStart := Index(0)
	i := Index(0)
	y := float32(0)

	for {
		h.LayoutRow(&r, i)
		if n < i+r.NumChars {
			break
		}
		if i+r.NumChars == z && z > 0 && h.CharAt(z-1) != h.Newline() {
			break
		}
		prevStart = i
		i += r.NumChars
		y += r.BaselineYDelta
		if i == z {
			r.NumChars = 0
			break
		}
	}

	first := i
	x := r.X0
	for k := Index(0); first+k < n; {
		x += h.Width(first, k)
		next := h.NextIndex(first + k)
		k = next - first
	}

	return FindState{
		X:         x,
		Y:         y,
		Height:    r.Ymax - r.Ymin,
		FirstChar: first,
		Length:    r.NumChars,
		PrevFirst: prevStart,
	}
}
