package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// glowAlpha is how strongly the glow color tints a head glyph's background
const glowAlpha = 0.3

// ScreenSurface renders into a tcell screen through a persistent cell buffer
// One glyph cell spans cellWidth terminal columns and one row
type ScreenSurface struct {
	screen    tcell.Screen
	buf       *CellBuffer
	cellWidth int
	attrs     Attr

	overlay      string
	overlayStyle tcell.Style
}

// NewScreenSurface wraps an initialized screen
func NewScreenSurface(screen tcell.Screen, cellWidth int) *ScreenSurface {
	if cellWidth < 1 {
		cellWidth = 1
	}
	w, h := screen.Size()
	return &ScreenSurface{
		screen:       screen,
		buf:          NewCellBuffer(w, h),
		cellWidth:    cellWidth,
		overlayStyle: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
	}
}

// Layout implements Surface
func (s *ScreenSurface) Layout() Layout {
	w, h := s.buf.Size()
	return Layout{Width: w, Height: h, CellWidth: s.cellWidth, CellHeight: 1}
}

// Resize implements Surface
func (s *ScreenSurface) Resize(width, height int) {
	s.buf.Resize(width, height)
	s.screen.Clear()
}

// SetFont implements Surface
// Terminals cannot switch faces, so families map onto attributes
func (s *ScreenSurface) SetFont(f Font) {
	switch f {
	case FontBold:
		s.attrs = AttrBold
	case FontItalic:
		s.attrs = AttrItalic
	case FontSans:
		s.attrs = AttrDim
	default:
		s.attrs = AttrNone
	}
}

// Fade implements Surface
func (s *ScreenSurface) Fade(alpha float64) {
	s.buf.Fade(alpha)
}

// DrawGlyph implements Surface
func (s *ScreenSurface) DrawGlyph(col, row int, glyph string, st Stroke) {
	x, y := col*s.cellWidth, row-1
	glyph, width := cellGlyph(glyph)
	s.buf.SetFg(x, y, glyph, st.Fg, s.attrs, width > 1)

	if st.Shadow {
		bg := Mix(RGBBlack, st.Glow, glowAlpha)
		for dx := 0; dx < s.cellWidth; dx++ {
			s.buf.SetBg(x+dx, y, bg)
		}
	}
}

// SetOverlay sets a status line drawn over the bottom row, empty hides it
// The overlay is not part of the buffer and is never faded
func (s *ScreenSurface) SetOverlay(text string) {
	s.overlay = text
}

// Buffer exposes the cell buffer for inspection
func (s *ScreenSurface) Buffer() *CellBuffer {
	return s.buf
}

// Present implements Surface
func (s *ScreenSurface) Present() {
	w, h := s.buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := s.buf.Get(x, y)
			style := cellStyle(c)
			if c.Cont {
				prev := s.buf.Get(x-1, y)
				if prev.Glyph != "" && runewidth.StringWidth(prev.Glyph) > 1 {
					continue
				}
			}
			if c.Glyph == "" {
				s.screen.SetContent(x, y, ' ', nil, style)
				continue
			}
			runes := []rune(c.Glyph)
			s.screen.SetContent(x, y, runes[0], runes[1:], style)
		}
	}

	if s.overlay != "" && h > 0 {
		x := 0
		for _, r := range s.overlay {
			if x >= w {
				break
			}
			s.screen.SetContent(x, h-1, r, nil, s.overlayStyle)
			x += max(runewidth.RuneWidth(r), 1)
		}
		for ; x < w; x++ {
			s.screen.SetContent(x, h-1, ' ', nil, s.overlayStyle)
		}
	}

	s.screen.Show()
}

func cellStyle(c Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
		Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	if c.Attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.Attrs&AttrItalic != 0 {
		style = style.Italic(true)
	}
	if c.Attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	return style
}

// cellGlyph maps a grapheme cluster to something a terminal cell can hold
// Zero-width clusters (newlines, controls) become a blank
func cellGlyph(glyph string) (string, int) {
	w := runewidth.StringWidth(glyph)
	if w == 0 {
		return " ", 1
	}
	return glyph, w
}
