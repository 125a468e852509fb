package rain

import (
	"fmt"

	"github.com/lixenwraith/bluerain/render"
)

// op is one recorded surface call
type op struct {
	kind  string // fade, draw, resize, font, present
	col   int
	row   int
	glyph string
	st    render.Stroke
}

func (o op) String() string {
	if o.kind == "draw" {
		return fmt.Sprintf("draw(%d,%d,%q,%s)", o.col, o.row, o.glyph, o.st.Fg.Hex())
	}
	return o.kind
}

// recordingSurface is a Surface that logs calls instead of drawing
type recordingSurface struct {
	layout render.Layout
	font   render.Font
	ops    []op
}

func newRecordingSurface(cols, rows int) *recordingSurface {
	return &recordingSurface{layout: render.Layout{Width: cols * 2, Height: rows, CellWidth: 2, CellHeight: 1}}
}

func (s *recordingSurface) Layout() render.Layout { return s.layout }

func (s *recordingSurface) Resize(width, height int) {
	s.layout.Width, s.layout.Height = width, height
	s.ops = append(s.ops, op{kind: "resize"})
}

func (s *recordingSurface) SetFont(f render.Font) {
	s.font = f
	s.ops = append(s.ops, op{kind: "font"})
}

func (s *recordingSurface) Fade(alpha float64) {
	s.ops = append(s.ops, op{kind: "fade"})
}

func (s *recordingSurface) DrawGlyph(col, row int, glyph string, st render.Stroke) {
	s.ops = append(s.ops, op{kind: "draw", col: col, row: row, glyph: glyph, st: st})
}

func (s *recordingSurface) Present() {
	s.ops = append(s.ops, op{kind: "present"})
}

func (s *recordingSurface) draws() []op {
	var out []op
	for _, o := range s.ops {
		if o.kind == "draw" {
			out = append(out, o)
		}
	}
	return out
}

func (s *recordingSurface) reset() {
	s.ops = nil
}
