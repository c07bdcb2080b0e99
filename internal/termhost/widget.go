package termhost

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/stbtextedit/internal/termhost/layout"
	"github.com/dshills/stbtextedit/internal/textedit"
)

// Widget draws one Field into a rectangular region of a tcell.Screen
// and turns tcell key/mouse events into textedit calls. It is the only
// piece of this package that touches the terminal, the same split
// internal/renderer/backend.Terminal draws behind for the full
// renderer.
type Widget struct {
	screen tcell.Screen
	field  *Field
	state  textedit.EditorState
	theme  Theme

	x, y, width, height int

	clicks    clickTracker
	clipboard Clipboard
}

// NewWidget returns a Widget drawing field on screen. singleLine mirrors
// textedit.Initialize's singleLine argument.
func NewWidget(screen tcell.Screen, field *Field, singleLine bool, opts ...textedit.Option) *Widget {
	w := &Widget{screen: screen, field: field, theme: DefaultTheme}
	textedit.Initialize(&w.state, singleLine, opts...)
	w.clicks = newClickTracker(500*time.Millisecond, 1)
	return w
}

// State returns the widget's EditorState, for inspection or persistence.
func (w *Widget) State() *textedit.EditorState { return &w.state }

// SetTheme replaces the widget's color theme.
func (w *Widget) SetTheme(t Theme) { w.theme = t }

// SetBounds places the widget at (x, y) with the given size, and
// updates the field's wrap width to match.
func (w *Widget) SetBounds(x, y, width, height int) {
	w.x, w.y, w.width, w.height = x, y, width, height
	w.state.RowCountPerPage = height
	wrap := 0
	if !w.state.SingleLine {
		wrap = width
	}
	w.field.SetMetrics(layout.NewMetrics(8, wrap))
}

// HandleEvent dispatches a tcell key or mouse event against the field.
func (w *Widget) HandleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		w.handleKey(e)
	case *tcell.EventMouse:
		w.handleMouse(e)
	}
}

func (w *Widget) handleKey(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyCtrlC:
		w.copySelection()
		return
	case tcell.KeyCtrlX:
		w.cutSelection()
		return
	case tcell.KeyCtrlV:
		w.pasteClipboard()
		return
	}

	shift := e.Modifiers()&tcell.ModShift != 0

	cmd, ok := commandKeys[e.Key()]
	if !ok {
		if e.Key() == tcell.KeyRune {
			textedit.Text(w.field, &w.state, []rune{e.Rune()})
		}
		return
	}
	if shift {
		cmd = cmd.WithShift()
	}
	textedit.HandleKey(w.field, &w.state, cmd)
}

// copySelection stores the active selection's text on the widget's
// clipboard register without modifying the field.
func (w *Widget) copySelection() {
	if !w.state.HasSelection() {
		return
	}
	lo, hi := w.state.SelectStart, w.state.SelectEnd
	if lo > hi {
		lo, hi = hi, lo
	}
	w.clipboard.Set(w.field.Slice(lo, hi))
}

// cutSelection copies the active selection to the clipboard, then
// deletes it through textedit.Cut so the deletion is undoable.
func (w *Widget) cutSelection() {
	w.copySelection()
	textedit.Cut(w.field, &w.state)
}

// pasteClipboard inserts the clipboard's contents at the cursor,
// replacing the active selection if any, through textedit.Paste.
func (w *Widget) pasteClipboard() {
	text := w.clipboard.Get()
	if len(text) == 0 {
		return
	}
	textedit.Paste(w.field, &w.state, text)
}

// commandKeys maps tcell's named keys to the engine's command
// vocabulary. Everything not listed here either arrives as
// tcell.KeyRune (literal text) or, for Ctrl+C/Ctrl+X/Ctrl+V, is
// intercepted directly in handleKey before this map is consulted.
var commandKeys = map[tcell.Key]textedit.Key{
	tcell.KeyLeft:       textedit.KeyLeft,
	tcell.KeyRight:      textedit.KeyRight,
	tcell.KeyUp:         textedit.KeyUp,
	tcell.KeyDown:       textedit.KeyDown,
	tcell.KeyPgUp:       textedit.KeyPageUp,
	tcell.KeyPgDn:       textedit.KeyPageDown,
	tcell.KeyHome:       textedit.KeyLineStart,
	tcell.KeyEnd:        textedit.KeyLineEnd,
	tcell.KeyDelete:     textedit.KeyDelete,
	tcell.KeyBackspace:  textedit.KeyBackspace,
	tcell.KeyBackspace2: textedit.KeyBackspace,
	tcell.KeyInsert:     textedit.KeyToggleInsert,
	tcell.KeyEnter:      textedit.Key('\n'),
	tcell.KeyTab:        textedit.Key('\t'),
}

func (w *Widget) handleMouse(e *tcell.EventMouse) {
	mx, my := e.Position()
	fx, fy := float32(mx-w.x), float32(my-w.y)
	if fx < 0 || fy < 0 {
		return
	}

	switch e.Buttons() {
	case tcell.Button1:
		switch w.clicks.recordClick(position{mx, my}, time.Now()) {
		case 2:
			w.selectWordAt(fx, fy)
		case 3:
			w.selectLineAt(fx, fy)
		default:
			textedit.Click(w.field, &w.state, fx, fy)
		}
	case tcell.ButtonNone:
		// drag: a button-up report with a button still logically held
		// arrives as ButtonNone on some terminals mid-drag; tcell
		// reports the held button on true drag events instead, so this
		// branch is a no-op placed for clarity, not behavior.
	default:
		if e.Buttons()&tcell.Button1 != 0 {
			textedit.Drag(w.field, &w.state, fx, fy)
		}
	}
}

// selectWordAt extends the selection to the maximal run of non-space
// grapheme clusters under (fx, fy), on a double-click — the same
// click-count escalation internal/input/mouse.clickTracker drives for
// the full editor's mouse handling.
func (w *Widget) selectWordAt(fx, fy float32) {
	idx, _ := textedit.LocateCoord(w.field, fx, fy)
	n := w.field.Len()

	start, end := idx, idx
	for start > 0 {
		prev := w.field.PrevIndex(start)
		if unicode.IsSpace(w.field.CharAt(prev)) {
			break
		}
		start = prev
	}
	for end < n && !unicode.IsSpace(w.field.CharAt(end)) {
		end = w.field.NextIndex(end)
	}

	w.state.SelectStart = start
	w.state.SelectEnd = end
	w.state.Cursor = end
}

// selectLineAt extends the selection to the whole line under (fx, fy),
// on a triple-click.
func (w *Widget) selectLineAt(fx, fy float32) {
	idx, _ := textedit.LocateCoord(w.field, fx, fy)
	start := textedit.LineStart(w.field, &w.state, idx)
	end := textedit.LineEnd(w.field, &w.state, idx)
	w.state.SelectStart = start
	w.state.SelectEnd = end
	w.state.Cursor = end
}

// Draw paints the field's visible rows and shows the cursor.
func (w *Widget) Draw() {
	selLo, selHi := w.state.SelectStart, w.state.SelectEnd
	if selLo > selHi {
		selLo, selHi = selHi, selLo
	}

	var i textedit.Index
	n := w.field.Len()
	for row := 0; row < w.height; row++ {
		var r textedit.Row
		w.field.LayoutRow(&r, i)
		w.drawRow(row, i, r.NumChars, selLo, selHi)
		i += r.NumChars
		if i >= n {
			for row++; row < w.height; row++ {
				w.clearRow(row)
			}
			break
		}
	}

	find := textedit.FindCharPos(w.field, w.state.Cursor, w.state.SingleLine)
	w.screen.ShowCursor(w.x+int(find.X), w.y+int(find.Y))
}

func (w *Widget) drawRow(row int, start, numChars textedit.Index, selLo, selHi textedit.Index) {
	col := 0
	for k := textedit.Index(0); k < numChars; {
		idx := start + k
		ch := w.field.CharAt(idx)
		next := w.field.NextIndex(idx)
		style := w.theme.TextStyle()
		if idx >= selLo && idx < selHi {
			style = w.theme.SelectionStyle()
		}
		if ch != '\n' && col < w.width {
			w.screen.SetContent(w.x+col, w.y+row, ch, nil, style)
		}
		col++
		k += next - idx
	}
	for ; col < w.width; col++ {
		w.screen.SetContent(w.x+col, w.y+row, ' ', nil, w.theme.TextStyle())
	}
}

func (w *Widget) clearRow(row int) {
	for col := 0; col < w.width; col++ {
		w.screen.SetContent(w.x+col, w.y+row, ' ', nil, w.theme.TextStyle())
	}
}
