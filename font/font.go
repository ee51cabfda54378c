// Package font holds the metadata of the twelve fixed-cell bitmap fonts used
// by the ST7789 text renderer.
//
// Glyph tables are opaque, read-only byte slices supplied by the caller (or by
// package fontgen). The registry only knows how to address a glyph inside a
// table and how to read a single bit of it.
//
// Two glyph encodings exist:
//
//   - ColumnMajor (fonts 1-6): 8 pixel tall cells, one byte per column,
//     bit 0 is the top row. A glyph is Width bytes.
//   - RowMajor (fonts 7-12): one row after the other, MSB first, each row
//     padded to a whole number of bytes. A glyph is Height*ceil(Width/8)
//     bytes.
package font

import (
	"errors"
	"fmt"
)

// ID identifies one of the twelve fonts.
type ID uint8

// Font identifiers.
const (
	Default    ID = 1  // Full extended ASCII
	Thick      ID = 2  // No lower case letters
	SevenSeg   ID = 3  // Seven segment
	Wide       ID = 4  // No lower case letters
	Tiny       ID = 5  // Tiny font
	HomeSpun   ID = 6  // HomeSpun
	Bignum     ID = 7  // Numbers only, fixed size
	Mednum     ID = 8  // Numbers only, fixed size
	ArialRound ID = 9  // Arial round
	ArialBold  ID = 10 // Arial bold
	Mia        ID = 11 // Mia
	Dedica     ID = 12 // Dedica
)

const idName = "DefaultThickSevenSegWideTinyHomeSpunBignumMednumArialRoundArialBoldMiaDedica"

var idIndex = [...]uint8{0, 7, 12, 20, 24, 28, 36, 42, 48, 58, 67, 70, 76}

func (id ID) String() string {
	if id < Default || id > Dedica {
		return fmt.Sprintf("ID(%d)", id)
	}
	return idName[idIndex[id-1]:idIndex[id]]
}

// Length is the number of characters in a font, starting at its offset.
type Length uint8

// Character-set length categories.
const (
	Numeric         Length = 14  // Extended numeric 0x2D-0x3A
	AlphaNumNoLCase Length = 59  // Reduced alphanumeric 0x20-0x5A
	AlphaNum        Length = 95  // Full alphanumeric 0x20-0x7E
	All             Length = 255 // Full range 0x00-0xFE
)

// Encoding describes how a glyph is packed in its table.
type Encoding uint8

// Glyph encodings.
const (
	ColumnMajor Encoding = iota
	RowMajor
)

// ASCII offsets of the first glyph in a table.
const (
	OffsetNone  = 0x00
	OffsetSpace = 0x20
	OffsetMinus = 0x2D
)

// Descriptor describes one font.
type Descriptor struct {
	ID       ID
	Width    int  // Glyph cell width in pixels
	Height   int  // Glyph cell height in pixels
	Offset   byte // First character in the table
	Length   Length
	Encoding Encoding
	// Fixed fonts cannot be scaled and are drawn with the unsized calls.
	Fixed bool

	Glyphs  []byte
	Enabled bool
}

// Table is the geometry of the twelve fonts, indexed by ID-1.
var Table = [12]Descriptor{
	{ID: Default, Width: 5, Height: 8, Offset: OffsetNone, Length: All, Encoding: ColumnMajor},
	{ID: Thick, Width: 7, Height: 8, Offset: OffsetSpace, Length: AlphaNumNoLCase, Encoding: ColumnMajor},
	{ID: SevenSeg, Width: 4, Height: 8, Offset: OffsetSpace, Length: AlphaNum, Encoding: ColumnMajor},
	{ID: Wide, Width: 8, Height: 8, Offset: OffsetSpace, Length: AlphaNumNoLCase, Encoding: ColumnMajor},
	{ID: Tiny, Width: 3, Height: 8, Offset: OffsetSpace, Length: AlphaNum, Encoding: ColumnMajor},
	{ID: HomeSpun, Width: 7, Height: 8, Offset: OffsetSpace, Length: AlphaNum, Encoding: ColumnMajor},
	{ID: Bignum, Width: 16, Height: 32, Offset: OffsetMinus, Length: Numeric, Encoding: RowMajor, Fixed: true},
	{ID: Mednum, Width: 16, Height: 16, Offset: OffsetMinus, Length: Numeric, Encoding: RowMajor, Fixed: true},
	{ID: ArialRound, Width: 16, Height: 24, Offset: OffsetSpace, Length: AlphaNum, Encoding: RowMajor},
	{ID: ArialBold, Width: 16, Height: 16, Offset: OffsetSpace, Length: AlphaNum, Encoding: RowMajor},
	{ID: Mia, Width: 8, Height: 16, Offset: OffsetSpace, Length: AlphaNum, Encoding: RowMajor},
	{ID: Dedica, Width: 6, Height: 12, Offset: OffsetSpace, Length: AlphaNum, Encoding: RowMajor},
}

// Contains reports whether c is inside the font's ASCII window.
func (d *Descriptor) Contains(c byte) bool {
	return c >= d.Offset && int(c) < int(d.Offset)+int(d.Length)
}

// RowBytes returns the number of bytes in one row of a RowMajor glyph.
func (d *Descriptor) RowBytes() int {
	return (d.Width + 7) / 8
}

// GlyphSize returns the number of bytes of one glyph in the table.
func (d *Descriptor) GlyphSize() int {
	if d.Encoding == ColumnMajor {
		return d.Width
	}
	return d.Height * d.RowBytes()
}

// TableSize returns the number of bytes a complete glyph table must hold.
func (d *Descriptor) TableSize() int {
	return int(d.Length) * d.GlyphSize()
}

// Glyph returns the packed bytes of character c, or nil when c is outside
// the font or the table is too short.
func (d *Descriptor) Glyph(c byte) []byte {
	if !d.Contains(c) {
		return nil
	}
	n := d.GlyphSize()
	start := int(c-d.Offset) * n
	if start+n > len(d.Glyphs) {
		return nil
	}
	return d.Glyphs[start : start+n]
}

// Bit reports whether the pixel at (col, row) of glyph is set.
func (d *Descriptor) Bit(glyph []byte, col, row int) bool {
	if d.Encoding == ColumnMajor {
		return glyph[col]&(1<<uint(row)) != 0
	}
	b := glyph[row*d.RowBytes()+col/8]
	return b&(0x80>>uint(col%8)) != 0
}

// Registry errors.
var (
	ErrUnknownFont = errors.New("font: unknown font id")
	ErrTableSize   = errors.New("font: glyph table too short")
)

// Registry is a data-driven table of the twelve font descriptors.
type Registry struct {
	fonts [12]Descriptor
}

// New returns a registry with every font known but disabled.
func New() *Registry {
	return &Registry{fonts: Table}
}

func (r *Registry) slot(id ID) (*Descriptor, error) {
	if id < Default || id > Dedica {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, id)
	}
	return &r.fonts[id-1], nil
}

// Load enables font id with the glyph table glyphs. The table is borrowed,
// not copied. A nil table enables the font without glyph data; drawing
// with it then reports a missing table.
func (r *Registry) Load(id ID, glyphs []byte) error {
	d, err := r.slot(id)
	if err != nil {
		return err
	}
	if glyphs != nil && len(glyphs) < d.TableSize() {
		return fmt.Errorf("%w: %v needs %d bytes, got %d", ErrTableSize, id, d.TableSize(), len(glyphs))
	}
	d.Glyphs = glyphs
	d.Enabled = true
	return nil
}

// Disable marks font id as not enabled. Its table is dropped.
func (r *Registry) Disable(id ID) error {
	d, err := r.slot(id)
	if err != nil {
		return err
	}
	d.Glyphs = nil
	d.Enabled = false
	return nil
}

// Lookup returns the descriptor of font id.
func (r *Registry) Lookup(id ID) (*Descriptor, error) {
	return r.slot(id)
}

// Enabled returns the enabled fonts in ID order.
func (r *Registry) Enabled() []*Descriptor {
	var out []*Descriptor
	for i := range r.fonts {
		if r.fonts[i].Enabled {
			out = append(out, &r.fonts[i])
		}
	}
	return out
}
