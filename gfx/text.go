package gfx

import "github.com/flavioheleno/st7789/font"

// DrawChar draws c at (x, y) in the current font scaled by size, which must
// be a scalable font. A size of 0 is treated as 1.
//
// On success the cursor moves to the right of the glyph cell, leaving one
// pixel of spacing.
func (e *Engine) DrawChar(x, y int, c byte, fg, bg uint16, size int) error {
	if e.font.Fixed {
		return e.reject("draw char", WrongFont, "font", e.font.ID)
	}
	return e.drawChar(x, y, c, fg, bg, size)
}

// DrawCharFixed draws c at (x, y) in the current font, which must be one of
// the fixed size fonts.
func (e *Engine) DrawCharFixed(x, y int, c byte, fg, bg uint16) error {
	if !e.font.Fixed {
		return e.reject("draw char", WrongFont, "font", e.font.ID)
	}
	return e.drawChar(x, y, c, fg, bg, 1)
}

func (e *Engine) drawChar(x, y int, c byte, fg, bg uint16, size int) error {
	d := e.font
	if size < 1 {
		size = 1
	}
	if !d.Contains(c) {
		return e.reject("draw char", CharFontASCIIRange, "font", d.ID, "char", c)
	}
	cw, ch := d.Width*size, d.Height*size
	sw, sh := e.t.Dimensions()
	if x < 0 || y < 0 || x+cw > sw || y+ch > sh {
		return e.reject("draw char", CharScreenBounds, "x", x, "y", y)
	}
	if !d.Enabled {
		return e.reject("draw char", FontNotEnabled, "font", d.ID)
	}
	g := d.Glyph(c)
	if g == nil {
		return e.reject("draw char", FontPtrNullptr, "font", d.ID)
	}

	buf := renderGlyph(d, g, fg, bg, size)
	if err := e.blit(x, y, x+cw-1, y+ch-1, buf); err != nil {
		return err
	}
	e.cursorX, e.cursorY = x+cw+1, y
	return nil
}

// renderGlyph expands glyph g into a row-major RGB565 cell where every glyph
// pixel becomes a size×size block.
func renderGlyph(d *font.Descriptor, g []byte, fg, bg uint16, size int) []byte {
	cw := d.Width * size
	buf := make([]byte, 2*cw*d.Height*size)
	for row := 0; row < d.Height; row++ {
		for col := 0; col < d.Width; col++ {
			c := bg
			if d.Bit(g, col, row) {
				c = fg
			}
			hi, lo := byte(c>>8), byte(c)
			for sy := 0; sy < size; sy++ {
				i := 2 * ((row*size+sy)*cw + col*size)
				for sx := 0; sx < size; sx++ {
					buf[i] = hi
					buf[i+1] = lo
					i += 2
				}
			}
		}
	}
	return buf
}

// DrawText draws text starting at (x, y) with a scalable font. With wrapping
// enabled, a glyph that would cross the right edge starts a new line at
// x = 0. The first failing character stops the call.
func (e *Engine) DrawText(x, y int, text []byte, fg, bg uint16, size int) error {
	if text == nil {
		return e.reject("draw text", CharArrayNullptr)
	}
	if e.font.Fixed {
		return e.reject("draw text", WrongFont, "font", e.font.ID)
	}
	if size < 1 {
		size = 1
	}
	return e.drawText(x, y, text, func(x, y int, c byte) error {
		return e.drawChar(x, y, c, fg, bg, size)
	}, size)
}

// DrawTextFixed draws text starting at (x, y) with a fixed size font.
func (e *Engine) DrawTextFixed(x, y int, text []byte, fg, bg uint16) error {
	if text == nil {
		return e.reject("draw text", CharArrayNullptr)
	}
	if !e.font.Fixed {
		return e.reject("draw text", WrongFont, "font", e.font.ID)
	}
	return e.drawText(x, y, text, func(x, y int, c byte) error {
		return e.drawChar(x, y, c, fg, bg, 1)
	}, 1)
}

func (e *Engine) drawText(x, y int, text []byte, draw func(x, y int, c byte) error, size int) error {
	cw, ch := e.font.Width*size, e.font.Height*size
	sw := e.Width()
	for _, c := range text {
		if e.wrap && x+cw > sw {
			x = 0
			y += ch
		}
		if err := draw(x, y, c); err != nil {
			return err
		}
		x += cw + 1
	}
	return nil
}
