package gfx

// repeat returns n big-endian copies of c.
func repeat(c uint16, n int) []byte {
	p := make([]byte, 2*n)
	hi, lo := byte(c>>8), byte(c)
	for i := 0; i < len(p); i += 2 {
		p[i] = hi
		p[i+1] = lo
	}
	return p
}

// blit addresses the inclusive window and streams p into it.
func (e *Engine) blit(x0, y0, x1, y1 int, p []byte) error {
	if err := e.t.SetAddrWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	return e.t.WritePixels(p)
}

// DrawPixel sets one pixel. Pixels outside the screen are skipped.
func (e *Engine) DrawPixel(x, y int, c uint16) error {
	w, h := e.t.Dimensions()
	if x < 0 || y < 0 || x >= w || y >= h {
		return nil
	}
	return e.blit(x, y, x, y, []byte{byte(c >> 8), byte(c)})
}

// DrawFastHLine draws a horizontal run of length l starting at (x, y).
func (e *Engine) DrawFastHLine(x, y, l int, c uint16) error {
	w, h := e.t.Dimensions()
	if y < 0 || y >= h {
		return nil
	}
	if x < 0 {
		l += x
		x = 0
	}
	if x+l > w {
		l = w - x
	}
	if l <= 0 {
		return nil
	}
	return e.blit(x, y, x+l-1, y, repeat(c, l))
}

// DrawFastVLine draws a vertical run of length l starting at (x, y).
func (e *Engine) DrawFastVLine(x, y, l int, c uint16) error {
	w, h := e.t.Dimensions()
	if x < 0 || x >= w {
		return nil
	}
	if y < 0 {
		l += y
		y = 0
	}
	if y+l > h {
		l = h - y
	}
	if l <= 0 {
		return nil
	}
	return e.blit(x, y, x, y+l-1, repeat(c, l))
}

// seq runs steps in order and stops at the first error.
func seq(steps ...func() error) error {
	for _, f := range steps {
		if err := f(); err != nil {
			return err
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawLine draws a line between two points, both included.
func (e *Engine) DrawLine(x0, y0, x1, y1 int, c uint16) error {
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		return e.DrawFastVLine(x0, y0, y1-y0+1, c)
	}
	if y0 == y1 {
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		return e.DrawFastHLine(x0, y0, x1-x0+1, c)
	}

	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	ystep := 1
	if y0 > y1 {
		ystep = -1
	}
	for ; x0 <= x1; x0++ {
		var werr error
		if steep {
			werr = e.DrawPixel(y0, x0, c)
		} else {
			werr = e.DrawPixel(x0, y0, c)
		}
		if werr != nil {
			return werr
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
	return nil
}

// DrawRect draws the outline of a w×h rectangle.
func (e *Engine) DrawRect(x, y, w, h int, c uint16) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	return seq(
		func() error { return e.DrawFastHLine(x, y, w, c) },
		func() error { return e.DrawFastHLine(x, y+h-1, w, c) },
		func() error { return e.DrawFastVLine(x, y, h, c) },
		func() error { return e.DrawFastVLine(x+w-1, y, h, c) },
	)
}

// FillRect fills a w×h rectangle, one horizontal line per row.
func (e *Engine) FillRect(x, y, w, h int, c uint16) error {
	for j := 0; j < h; j++ {
		if err := e.DrawFastHLine(x, y+j, w, c); err != nil {
			return err
		}
	}
	return nil
}

// FillRectBuffer fills a w×h rectangle with a single window and stream.
// The rectangle is clipped to the screen; a start point outside the screen
// returns ShapeScreenBounds and an empty rectangle BufferSize.
func (e *Engine) FillRectBuffer(x, y, w, h int, c uint16) error {
	sw, sh := e.t.Dimensions()
	if x < 0 || y < 0 || x >= sw || y >= sh {
		return e.reject("fill rect buffer", ShapeScreenBounds, "x", x, "y", y)
	}
	if x+w > sw {
		w = sw - x
	}
	if y+h > sh {
		h = sh - y
	}
	if w <= 0 || h <= 0 {
		return e.reject("fill rect buffer", BufferSize, "w", w, "h", h)
	}
	return e.blit(x, y, x+w-1, y+h-1, repeat(c, w*h))
}

// FillScreen fills the whole screen with c.
func (e *Engine) FillScreen(c uint16) error {
	w, h := e.t.Dimensions()
	return e.FillRect(0, 0, w, h, c)
}

// pixels draws a list of (x, y) pairs.
func (e *Engine) pixels(c uint16, xy ...int) error {
	for i := 0; i+1 < len(xy); i += 2 {
		if err := e.DrawPixel(xy[i], xy[i+1], c); err != nil {
			return err
		}
	}
	return nil
}

// DrawCircle draws a circle of radius r centred on (x0, y0).
func (e *Engine) DrawCircle(x0, y0, r int, c uint16) error {
	if r < 0 {
		return nil
	}
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x, y := 0, r

	if err := e.pixels(c, x0, y0+r, x0, y0-r, x0+r, y0, x0-r, y0); err != nil {
		return err
	}
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx
		if err := e.pixels(c,
			x0+x, y0+y, x0-x, y0+y, x0+x, y0-y, x0-x, y0-y,
			x0+y, y0+x, x0-y, y0+x, x0+y, y0-x, x0-y, y0-x,
		); err != nil {
			return err
		}
	}
	return nil
}

// Quadrant masks of drawCircleHelper and fillCircleHelper.
const (
	cornerTopLeft     = 0x1
	cornerTopRight    = 0x2
	cornerBottomRight = 0x4
	cornerBottomLeft  = 0x8
)

// drawCircleHelper draws the quarter arcs selected by corners.
func (e *Engine) drawCircleHelper(x0, y0, r int, corners uint8, c uint16) error {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x, y := 0, r

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx
		var err error
		if corners&cornerBottomRight != 0 {
			err = e.pixels(c, x0+x, y0+y, x0+y, y0+x)
		}
		if err == nil && corners&cornerTopRight != 0 {
			err = e.pixels(c, x0+x, y0-y, x0+y, y0-x)
		}
		if err == nil && corners&cornerBottomLeft != 0 {
			err = e.pixels(c, x0-y, y0+x, x0-x, y0+y)
		}
		if err == nil && corners&cornerTopLeft != 0 {
			err = e.pixels(c, x0-y, y0-x, x0-x, y0-y)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// fillCircleHelper fills the right (mask 1) and/or left (mask 2) half of a
// circle with vertical chords. delta stretches every chord downwards, which
// is the straight side of a rounded rectangle.
func (e *Engine) fillCircleHelper(x0, y0, r int, corners uint8, delta int, c uint16) error {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x, y := 0, r
	px, py := x, y

	delta++
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx
		// Skip chords the next column would draw twice.
		if x < y+1 {
			if corners&1 != 0 {
				if err := e.DrawFastVLine(x0+x, y0-y, 2*y+delta, c); err != nil {
					return err
				}
			}
			if corners&2 != 0 {
				if err := e.DrawFastVLine(x0-x, y0-y, 2*y+delta, c); err != nil {
					return err
				}
			}
		}
		if y != py {
			if corners&1 != 0 {
				if err := e.DrawFastVLine(x0+py, y0-px, 2*px+delta, c); err != nil {
					return err
				}
			}
			if corners&2 != 0 {
				if err := e.DrawFastVLine(x0-py, y0-px, 2*px+delta, c); err != nil {
					return err
				}
			}
			py = y
		}
		px = x
	}
	return nil
}

// FillCircle fills a circle of radius r centred on (x0, y0).
func (e *Engine) FillCircle(x0, y0, r int, c uint16) error {
	if r < 0 {
		return nil
	}
	if err := e.DrawFastVLine(x0, y0-r, 2*r+1, c); err != nil {
		return err
	}
	return e.fillCircleHelper(x0, y0, r, 3, 0, c)
}

func clampRadius(w, h, r int) int {
	m := w
	if h < m {
		m = h
	}
	if r > m/2 {
		r = m / 2
	}
	if r < 0 {
		r = 0
	}
	return r
}

// DrawRoundRect draws the outline of a rectangle with corners of radius r.
func (e *Engine) DrawRoundRect(x, y, w, h, r int, c uint16) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	r = clampRadius(w, h, r)
	return seq(
		func() error { return e.DrawFastHLine(x+r, y, w-2*r, c) },
		func() error { return e.DrawFastHLine(x+r, y+h-1, w-2*r, c) },
		func() error { return e.DrawFastVLine(x, y+r, h-2*r, c) },
		func() error { return e.DrawFastVLine(x+w-1, y+r, h-2*r, c) },
		func() error { return e.drawCircleHelper(x+r, y+r, r, cornerTopLeft, c) },
		func() error { return e.drawCircleHelper(x+w-r-1, y+r, r, cornerTopRight, c) },
		func() error { return e.drawCircleHelper(x+w-r-1, y+h-r-1, r, cornerBottomRight, c) },
		func() error { return e.drawCircleHelper(x+r, y+h-r-1, r, cornerBottomLeft, c) },
	)
}

// FillRoundRect fills a rectangle with corners of radius r.
func (e *Engine) FillRoundRect(x, y, w, h, r int, c uint16) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	r = clampRadius(w, h, r)
	if err := e.FillRect(x+r, y, w-2*r, h, c); err != nil {
		return err
	}
	if err := e.fillCircleHelper(x+w-r-1, y+r, r, 1, h-2*r-1, c); err != nil {
		return err
	}
	return e.fillCircleHelper(x+r, y+r, r, 2, h-2*r-1, c)
}

// DrawTriangle draws the outline of a triangle.
func (e *Engine) DrawTriangle(x0, y0, x1, y1, x2, y2 int, c uint16) error {
	if err := e.DrawLine(x0, y0, x1, y1, c); err != nil {
		return err
	}
	if err := e.DrawLine(x1, y1, x2, y2, c); err != nil {
		return err
	}
	return e.DrawLine(x2, y2, x0, y0, c)
}

// FillTriangle fills a triangle with horizontal scanlines.
func (e *Engine) FillTriangle(x0, y0, x1, y1, x2, y2 int, c uint16) error {
	// Sort by y: y0 <= y1 <= y2.
	if y0 > y1 {
		y0, y1 = y1, y0
		x0, x1 = x1, x0
	}
	if y1 > y2 {
		y2, y1 = y1, y2
		x2, x1 = x1, x2
	}
	if y0 > y1 {
		y0, y1 = y1, y0
		x0, x1 = x1, x0
	}

	if y0 == y2 {
		a, b := x0, x0
		for _, x := range [...]int{x1, x2} {
			if x < a {
				a = x
			} else if x > b {
				b = x
			}
		}
		return e.DrawFastHLine(a, y0, b-a+1, c)
	}

	dx01, dy01 := x1-x0, y1-y0
	dx02, dy02 := x2-x0, y2-y0
	dx12, dy12 := x2-x1, y2-y1
	sa, sb := 0, 0

	// The upper part includes scanline y1 only for a flat bottom edge;
	// otherwise y1 belongs to the lower part.
	last := y1 - 1
	if y1 == y2 {
		last = y1
	}

	y := y0
	for ; y <= last; y++ {
		a := x0 + sa/dy01
		b := x0 + sb/dy02
		sa += dx01
		sb += dx02
		if a > b {
			a, b = b, a
		}
		if err := e.DrawFastHLine(a, y, b-a+1, c); err != nil {
			return err
		}
	}

	sa = dx12 * (y - y1)
	sb = dx02 * (y - y0)
	for ; y <= y2; y++ {
		a := x1 + sa/dy12
		b := x0 + sb/dy02
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		if err := e.DrawFastHLine(a, y, b-a+1, c); err != nil {
			return err
		}
	}
	return nil
}
