package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultCellSize is the glyph cell edge in pixels for raster output
const DefaultCellSize = 17

// haloOffsets are the pixel offsets of the glow copies drawn under a glyph
var haloOffsets = []image.Point{
	{-2, 0}, {2, 0}, {0, -2}, {0, 2},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// ImageSurface rasterizes the rain into an RGBA image the way a 2D canvas would:
// fades are translucent black rectangles composited over existing pixels
type ImageSurface struct {
	img   *image.RGBA
	cell  int
	faces [fontCount]font.Face
	font  Font
}

// NewImageSurface creates a black raster of width×height pixels
func NewImageSurface(width, height, cellSize int) (*ImageSurface, error) {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	s := &ImageSurface{cell: cellSize}

	sources := [fontCount][]byte{
		FontMono:   gomono.TTF,
		FontBold:   gomonobold.TTF,
		FontItalic: gomonoitalic.TTF,
		FontSans:   goregular.TTF,
	}
	for f, data := range sources {
		face, err := loadFace(data, float64(cellSize))
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("font %s: %w", Font(f), err)
		}
		s.faces[f] = face
	}

	s.Resize(width, height)
	return s, nil
}

func loadFace(data []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// Close releases font faces
func (s *ImageSurface) Close() {
	for i, f := range s.faces {
		if f != nil {
			f.Close()
			s.faces[i] = nil
		}
	}
}

// Layout implements Surface
func (s *ImageSurface) Layout() Layout {
	b := s.img.Bounds()
	return Layout{Width: b.Dx(), Height: b.Dy(), CellWidth: s.cell, CellHeight: s.cell}
}

// Resize implements Surface
// Like a canvas, resizing wipes the raster
func (s *ImageSurface) Resize(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	draw.Draw(s.img, s.img.Bounds(), image.Black, image.Point{}, draw.Src)
}

// SetFont implements Surface
func (s *ImageSurface) SetFont(f Font) {
	if f < fontCount {
		s.font = f
	}
}

// Fade implements Surface
func (s *ImageSurface) Fade(alpha float64) {
	a := uint8(alpha * 255)
	if a == 0 {
		return
	}
	overlay := image.NewUniform(color.NRGBA{A: a})
	draw.Draw(s.img, s.img.Bounds(), overlay, image.Point{}, draw.Over)
}

// DrawGlyph implements Surface
// Row is the baseline row, matching fillText at (col*cell, row*cell)
func (s *ImageSurface) DrawGlyph(col, row int, glyph string, st Stroke) {
	face := s.faces[s.font]
	if face == nil {
		return
	}
	dot := fixed.P(col*s.cell, row*s.cell)

	if st.Shadow {
		glow := image.NewUniform(color.NRGBA{R: st.Glow.R, G: st.Glow.G, B: st.Glow.B, A: 90})
		for _, off := range haloOffsets {
			d := &font.Drawer{Dst: s.img, Src: glow, Face: face, Dot: dot.Add(fixed.P(off.X, off.Y))}
			d.DrawString(glyph)
		}
	}

	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(color.RGBA{R: st.Fg.R, G: st.Fg.G, B: st.Fg.B, A: 255}),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(glyph)
}

// Present implements Surface, the raster is always current
func (s *ImageSurface) Present() {}

// Image returns the backing raster
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// EncodePNG writes the current raster as PNG
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
