package termhost

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme holds the colors a Widget paints with. Selection is blended
// with Background in Lab space at render time rather than stored as a
// flat color, the way core.Color.Blend blends in sRGB — blending in Lab
// keeps the midpoint perceptually between the two instead of just
// numerically between their channels.
type Theme struct {
	Foreground     tcell.Color
	Background     tcell.Color
	Selection      tcell.Color
	SelectionBlend float64 // 0 = Background, 1 = Selection
	CursorStyle    tcell.CursorStyle
}

// DefaultTheme is a reasonable default for a terminal text field.
var DefaultTheme = Theme{
	Foreground:     tcell.ColorWhite,
	Background:     tcell.ColorBlack,
	Selection:      tcell.ColorSteelBlue,
	SelectionBlend: 0.55,
	CursorStyle:    tcell.CursorStyleSteadyBar,
}

// SelectionStyle returns the tcell.Style a Widget paints selected text
// with: Theme.Foreground over a Background/Selection blend.
func (t Theme) SelectionStyle() tcell.Style {
	bg := blend(t.Background, t.Selection, t.SelectionBlend)
	return tcell.StyleDefault.Foreground(t.Foreground).Background(bg)
}

// TextStyle returns the tcell.Style unselected text is painted with.
func (t Theme) TextStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Foreground).Background(t.Background)
}

func blend(a, b tcell.Color, amount float64) tcell.Color {
	if amount <= 0 {
		return a
	}
	if amount >= 1 {
		return b
	}
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	ca := colorful.Color{R: float64(ar) / 255, G: float64(ag) / 255, B: float64(ab) / 255}
	cb := colorful.Color{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255}
	blended := ca.BlendLab(cb, amount)
	r, g, bl := blended.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}
