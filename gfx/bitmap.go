package gfx

import (
	"image"

	"github.com/flavioheleno/st7789/image565"
)

// checkArea validates a w×h area at (x, y) against the screen.
func (e *Engine) checkArea(x, y, w, h int) Code {
	sw, sh := e.t.Dimensions()
	if x < 0 || y < 0 || x >= sw || y >= sh {
		return BitmapScreenBounds
	}
	if x+w > sw || y+h > sh {
		return BitmapLargerThanScreen
	}
	return Success
}

// DrawBitmap draws a 1-bit bitmap of w×h pixels. Rows are packed MSB first,
// w/8 bytes per row; set bits are drawn in fg and clear bits in bg.
//
// w must be a multiple of 8 and data must hold exactly (w/8)*h bytes.
func (e *Engine) DrawBitmap(x, y, w, h int, fg, bg uint16, data []byte) error {
	if w%8 != 0 {
		return e.reject("draw bitmap", BitmapHorizontalSize, "w", w)
	}
	if data == nil {
		return e.reject("draw bitmap", BitmapNullptr)
	}
	if c := e.checkArea(x, y, w, h); c != Success {
		return e.reject("draw bitmap", c, "x", x, "y", y, "w", w, "h", h)
	}
	if w <= 0 || h <= 0 || len(data) != (w/8)*h {
		return e.reject("draw bitmap", BitmapSize, "len", len(data), "want", (w/8)*h)
	}

	stride := w / 8
	buf := make([]byte, 0, 2*w*h)
	fhi, flo := byte(fg>>8), byte(fg)
	bhi, blo := byte(bg>>8), byte(bg)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if data[j*stride+i/8]&(0x80>>uint(i%8)) != 0 {
				buf = append(buf, fhi, flo)
			} else {
				buf = append(buf, bhi, blo)
			}
		}
	}
	return e.blit(x, y, x+w-1, y+h-1, buf)
}

// IconHeight is the height of every icon.
const IconHeight = 8

// DrawIcon draws a w pixel wide, 8 pixel tall icon. data holds one byte per
// column, bit 0 being the top row; set bits are drawn in fg and clear bits
// in bg.
func (e *Engine) DrawIcon(x, y, w int, fg, bg uint16, data []byte) error {
	if data == nil {
		return e.reject("draw icon", BitmapNullptr)
	}
	sw, sh := e.t.Dimensions()
	if x < 0 || y < 0 || x >= sw || y >= sh {
		return e.reject("draw icon", BitmapScreenBounds, "x", x, "y", y)
	}
	if w > sw {
		return e.reject("draw icon", IconScreenWidth, "w", w)
	}
	if x+w > sw || y+IconHeight > sh {
		return e.reject("draw icon", BitmapLargerThanScreen, "x", x, "y", y, "w", w)
	}
	if w <= 0 || len(data) < w {
		return e.reject("draw icon", BitmapSize, "len", len(data), "want", w)
	}

	buf := make([]byte, 0, 2*w*IconHeight)
	for row := 0; row < IconHeight; row++ {
		for col := 0; col < w; col++ {
			c := bg
			if data[col]&(1<<uint(row)) != 0 {
				c = fg
			}
			buf = append(buf, byte(c>>8), byte(c))
		}
	}
	return e.blit(x, y, x+w-1, y+IconHeight-1, buf)
}

// checkColorData validates the arguments shared by the 16 and 24-bit
// blitters. bpp is the number of bytes per pixel.
func (e *Engine) checkColorData(op string, x, y, w, h int, data []byte, bpp int) error {
	if data == nil {
		return e.reject(op, BitmapNullptr)
	}
	if c := e.checkArea(x, y, w, h); c != Success {
		return e.reject(op, c, "x", x, "y", y, "w", w, "h", h)
	}
	if w <= 0 || h <= 0 || len(data) < w*h*bpp {
		return e.reject(op, BitmapSize, "len", len(data), "want", w*h*bpp)
	}
	return nil
}

// DrawBitmap16 draws w×h big-endian RGB565 pixels.
func (e *Engine) DrawBitmap16(x, y int, data []byte, w, h int) error {
	if err := e.checkColorData("draw bitmap16", x, y, w, h, data, 2); err != nil {
		return err
	}
	return e.blit(x, y, x+w-1, y+h-1, data[:2*w*h])
}

// DrawBitmap24 draws w×h RGB888 pixels, converting each to RGB565.
func (e *Engine) DrawBitmap24(x, y int, data []byte, w, h int) error {
	if err := e.checkColorData("draw bitmap24", x, y, w, h, data, 3); err != nil {
		return err
	}
	n := w * h
	buf := make([]byte, 2*n)
	for i := 0; i < n; i++ {
		c := image565.Color565(data[3*i], data[3*i+1], data[3*i+2])
		buf[2*i] = byte(c >> 8)
		buf[2*i+1] = byte(c)
	}
	return e.blit(x, y, x+w-1, y+h-1, buf)
}

// DrawSprite draws w×h big-endian RGB565 pixels, skipping those equal to
// transparent. Every visible run of a row is addressed as its own window.
func (e *Engine) DrawSprite(x, y int, data []byte, w, h int, transparent uint16) error {
	if err := e.checkColorData("draw sprite", x, y, w, h, data, 2); err != nil {
		return err
	}
	at := func(i, j int) uint16 {
		k := 2 * (j*w + i)
		return uint16(data[k])<<8 | uint16(data[k+1])
	}
	for j := 0; j < h; j++ {
		for i := 0; i < w; {
			if at(i, j) == transparent {
				i++
				continue
			}
			start := i
			for i < w && at(i, j) != transparent {
				i++
			}
			k := 2 * (j*w + start)
			if err := e.blit(x+start, y+j, x+i-1, y+j, data[k:k+2*(i-start)]); err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawImage draws img with its top left corner at (x, y). The image is
// converted to RGB565 and drawn as DrawBitmap16 would.
func (e *Engine) DrawImage(x, y int, img image.Image) error {
	if img == nil {
		return e.reject("draw image", BitmapNullptr)
	}
	r := img.Bounds()
	if r.Empty() {
		return e.reject("draw image", BitmapSize, "bounds", r)
	}
	return e.DrawBitmap16(x, y, image565.Encode(img, r), r.Dx(), r.Dy())
}
