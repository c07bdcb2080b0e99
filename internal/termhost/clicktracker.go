package termhost

import "time"

// position is a screen cell coordinate, used only to measure click
// distance for double/triple click detection.
type position struct {
	X, Y int
}

func (p position) distance(other position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// clickTracker groups consecutive clicks into single/double/triple
// click counts, adapted from internal/input/mouse's click tracker: a
// click within maxTime and maxDistance of the last one increments the
// run, wrapping back to 1 after 3 (a quadruple-click behaves like a
// fresh single click).
type clickTracker struct {
	maxTime     time.Duration
	maxDistance int

	lastPos   position
	lastTime  time.Time
	lastCount int
}

func newClickTracker(maxTime time.Duration, maxDistance int) clickTracker {
	return clickTracker{maxTime: maxTime, maxDistance: maxDistance}
}

// recordClick records a click at pos and returns the resulting run
// count (1, 2, or 3).
func (t *clickTracker) recordClick(pos position, timestamp time.Time) int {
	if t.isPartOfSequence(pos, timestamp) {
		t.lastCount++
		if t.lastCount > 3 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}
	t.lastPos = pos
	t.lastTime = timestamp
	return t.lastCount
}

func (t *clickTracker) isPartOfSequence(pos position, timestamp time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}
	return pos.distance(t.lastPos) <= t.maxDistance
}
