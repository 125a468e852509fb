package rain

import "github.com/lixenwraith/bluerain/render"

// Renderer draws animation ticks onto a surface
type Renderer struct {
	surface render.Surface
}

// NewRenderer creates a renderer for surface
func NewRenderer(surface render.Surface) *Renderer {
	return &Renderer{surface: surface}
}

// Tick draws one animation step and advances every lane that holds a character
// The whole surface is faded exactly once before any lane is drawn
// Returns the number of lanes that advanced
func (r *Renderer) Tick(cols Columns, s Settings) int {
	r.surface.Fade(FadeAlpha)

	layout := r.surface.Layout()
	visible := layout.Columns()
	rainColor := s.Color()
	advanced := 0

	for i := range cols {
		// Surface may lag behind a resize that already grew the lanes
		if i >= visible {
			continue
		}
		c := &cols[i]
		chars := Segment(c.Buffer, s.EmojiVisible)

		if c.Cursor >= 0 && c.Cursor < len(chars) {
			character := chars[c.Cursor]
			r.draw(i, c.FallDepth, character, render.HeadColor, s)

			// Recolor the previous head to leave a trail behind the new one
			if c.FallDepth >= 2 && c.Cursor >= 1 {
				r.draw(i, c.FallDepth-1, chars[c.Cursor-1], rainColor, s)
			}

			c.FallDepth++
			c.Cursor++
			advanced++

			if layout.Overflows(c.FallDepth) {
				// The last head would otherwise stay white at the bottom row
				r.draw(i, c.FallDepth-1, character, rainColor, s)
				c.FallDepth = 1
			}
		}

		if c.Cursor >= len(chars) {
			c.clear()
		}
	}

	return advanced
}

func (r *Renderer) draw(col, row int, glyph string, fg render.RGB, s Settings) {
	r.surface.DrawGlyph(col, row, glyph, render.Stroke{
		Fg:     fg,
		Glow:   s.Color(),
		Shadow: s.ShadowEnabled,
	})
}
