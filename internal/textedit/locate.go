package textedit

// LocateCoord maps a screen coordinate to a character index, walking
// rows from the top via Host.LayoutRow until it finds the row (x, y)
// falls in, then scanning that row's character widths to find the
// character boundary nearest the point. The second result is 1 when the
// point falls on a character other than the first of its row, past the
// end of its row, or below the last row, and 0 otherwise; Click and Drag
// discard it.
func LocateCoord(h Host, x, y float32) (Index, int) {
	var r Row
	n := h.Len()
	baseY := float32(0)
	i := Index(0)
	side := 0

	for i < n {
		h.LayoutRow(&r, i)
		if r.NumChars <= 0 {
			// Defensive: a host that ever reports an empty row mid
			// document must not wedge the loop. The original guards
			// every row, not just a final one.
			return n, side
		}
		if i == 0 && y < baseY+r.Ymin {
			return 0, side
		}
		if y < baseY+r.Ymax {
			break
		}
		i += r.NumChars
		baseY += r.BaselineYDelta
	}

	if i >= n {
		return n, 1
	}

	if x < r.X0 {
		return i, side
	}

	if x < r.X1 {
		prevX := r.X0
		for k := Index(0); k < r.NumChars; {
			w := h.Width(i, k)
			if x < prevX+w {
				if k == 0 {
					side = 0
				} else {
					side = 1
				}
				if x < prevX+w/2 {
					return k + i, side
				}
				return h.NextIndex(i + k), side
			}
			prevX += w
			next := h.NextIndex(i + k)
			k = next - i
		}
	}

	side = 1
	if h.CharAt(i+r.NumChars-1) == h.Newline() {
		return i + r.NumChars - 1, side
	}
	return i + r.NumChars, side
}
