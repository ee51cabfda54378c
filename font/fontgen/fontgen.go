// Package fontgen rasterizes existing fonts into the packed glyph tables of
// package font.
//
// Small 8 pixel fonts are rendered with tinyfont, larger ones with
// golang.org/x/image faces (basicfont or TrueType). Rendering is monochrome:
// a face pixel is set when its coverage reaches half intensity.
package fontgen

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/flavioheleno/st7789/font"
	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// canvas is a monochrome cell implementing drivers.Displayer so tinyfont can
// draw into it.
type canvas struct {
	w, h int16
	bits []bool
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: int16(w), h: int16(h), bits: make([]bool, w*h)}
}

func (c *canvas) Size() (x, y int16) { return c.w, c.h }

func (c *canvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.bits[int(y)*int(c.w)+int(x)] = col.A != 0
}

func (c *canvas) Display() error { return nil }

func (c *canvas) clear() {
	for i := range c.bits {
		c.bits[i] = false
	}
}

func (c *canvas) at(x, y int) bool {
	return c.bits[y*int(c.w)+x]
}

// pack appends the canvas to dst using the descriptor's encoding.
func pack(dst []byte, d *font.Descriptor, c *canvas) []byte {
	if d.Encoding == font.ColumnMajor {
		for x := 0; x < d.Width; x++ {
			var b byte
			for y := 0; y < d.Height && y < 8; y++ {
				if c.at(x, y) {
					b |= 1 << uint(y)
				}
			}
			dst = append(dst, b)
		}
		return dst
	}
	rowBytes := d.RowBytes()
	for y := 0; y < d.Height; y++ {
		row := make([]byte, rowBytes)
		for x := 0; x < d.Width; x++ {
			if c.at(x, y) {
				row[x/8] |= 0x80 >> uint(x%8)
			}
		}
		dst = append(dst, row...)
	}
	return dst
}

// printable reports whether c has a glyph in the source fonts. Control
// characters and the upper half of the byte range stay blank.
func printable(c int) bool {
	return c >= 0x20 && c < 0x7F
}

// FromFonter renders a tinyfont font into a glyph table for d. baseline is
// the cell row of the glyph baseline, x the left margin.
func FromFonter(f tinyfont.Fonter, d *font.Descriptor, x, baseline int16) []byte {
	c := newCanvas(d.Width, d.Height)
	out := make([]byte, 0, d.TableSize())
	on := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	for i := 0; i < int(d.Length); i++ {
		ch := int(d.Offset) + i
		c.clear()
		if printable(ch) {
			tinyfont.DrawChar(c, f, x, baseline, rune(ch), on)
		}
		out = pack(out, d, c)
	}
	return out
}

// FromFace renders an x/image font face into a glyph table for d. Each glyph
// is centred horizontally in its cell.
func FromFace(face xfont.Face, d *font.Descriptor, baseline int) []byte {
	c := newCanvas(d.Width, d.Height)
	dst := image.NewAlpha(image.Rect(0, 0, d.Width, d.Height))
	out := make([]byte, 0, d.TableSize())
	for i := 0; i < int(d.Length); i++ {
		ch := int(d.Offset) + i
		c.clear()
		for j := range dst.Pix {
			dst.Pix[j] = 0
		}
		if printable(ch) {
			x := 0
			if adv, ok := face.GlyphAdvance(rune(ch)); ok {
				if w := adv.Round(); w < d.Width {
					x = (d.Width - w) / 2
				}
			}
			dr := xfont.Drawer{
				Dst:  dst,
				Src:  image.Opaque,
				Face: face,
				Dot:  fixed.P(x, baseline),
			}
			dr.DrawString(string(rune(ch)))
			for y := 0; y < d.Height; y++ {
				for x := 0; x < d.Width; x++ {
					if dst.AlphaAt(x, y).A >= 0x80 {
						c.bits[y*d.Width+x] = true
					}
				}
			}
		}
		out = pack(out, d, c)
	}
	return out
}

// TrueType parses a TrueType font and returns a face of the given pixel size.
func TrueType(ttf []byte, size float64) (xfont.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("fontgen: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	}), nil
}

type fonterSource struct {
	f           tinyfont.Fonter
	x, baseline int16
}

type faceSource struct {
	ttf      []byte
	size     float64
	face     xfont.Face // Used as is when ttf is nil
	baseline int
}

// sources maps every font to the font it is rendered from.
var sources = map[font.ID]any{
	font.Default:    fonterSource{f: &tinyfont.TomThumb, x: 1, baseline: 6},
	font.Thick:      fonterSource{f: &proggy.TinySZ8pt7b, x: 0, baseline: 7},
	font.SevenSeg:   fonterSource{f: &tinyfont.Picopixel, x: 0, baseline: 6},
	font.Wide:       fonterSource{f: &proggy.TinySZ8pt7b, x: 1, baseline: 7},
	font.Tiny:       fonterSource{f: &tinyfont.Tiny3x3a2pt7b, x: 0, baseline: 5},
	font.HomeSpun:   fonterSource{f: &tinyfont.Org01, x: 1, baseline: 6},
	font.Bignum:     faceSource{ttf: gomonobold.TTF, size: 26, baseline: 26},
	font.Mednum:     faceSource{ttf: gomonobold.TTF, size: 16, baseline: 14},
	font.ArialRound: faceSource{ttf: goregular.TTF, size: 20, baseline: 19},
	font.ArialBold:  faceSource{ttf: gobold.TTF, size: 15, baseline: 13},
	font.Mia:        faceSource{face: basicfont.Face7x13, baseline: 12},
	font.Dedica:     faceSource{ttf: gomono.TTF, size: 10, baseline: 9},
}

var (
	once   sync.Once
	tables [12][]byte
	genErr error
)

// Generate renders the glyph table of font id.
func Generate(id font.ID) ([]byte, error) {
	if id < font.Default || id > font.Dedica {
		return nil, fmt.Errorf("fontgen: %w: %d", font.ErrUnknownFont, int(id))
	}
	d := font.Table[id-1]
	switch s := sources[id].(type) {
	case fonterSource:
		return FromFonter(s.f, &d, s.x, s.baseline), nil
	case faceSource:
		face := s.face
		if s.ttf != nil {
			var err error
			if face, err = TrueType(s.ttf, s.size); err != nil {
				return nil, err
			}
		}
		return FromFace(face, &d, s.baseline), nil
	}
	return nil, fmt.Errorf("fontgen: no source for %v", id)
}

// Builtin returns a registry with all twelve fonts enabled. The tables are
// generated once and shared read-only between registries.
func Builtin() (*font.Registry, error) {
	once.Do(func() {
		for i := range tables {
			if tables[i], genErr = Generate(font.ID(i + 1)); genErr != nil {
				return
			}
		}
	})
	if genErr != nil {
		return nil, genErr
	}
	r := font.New()
	for i, t := range tables {
		if err := r.Load(font.ID(i+1), t); err != nil {
			return nil, err
		}
	}
	return r, nil
}
