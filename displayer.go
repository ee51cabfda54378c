package st7789

import (
	"image/color"

	"github.com/flavioheleno/st7789/image565"
	"tinygo.org/x/drivers"
)

// Displayer adapts a Dev to drivers.Displayer so tinyfont and tinyterm can
// draw on it.
//
// Pixels are written straight to the controller. SetPixel and SetScroll
// cannot return errors, so the first one is held and returned by Display.
type Displayer struct {
	d   *Dev
	err error
}

// Displayer returns a drivers.Displayer for the device.
func (d *Dev) Displayer() *Displayer {
	return &Displayer{d: d}
}

var _ drivers.Displayer = (*Displayer)(nil)

// Size returns the display size after rotation.
func (p *Displayer) Size() (x, y int16) {
	w, h := p.d.Dimensions()
	return int16(w), int16(h)
}

// SetPixel draws one pixel.
func (p *Displayer) SetPixel(x, y int16, c color.RGBA) {
	p.keep(p.d.DrawPixel(int(x), int(y), image565.Color565(c.R, c.G, c.B)))
}

// Display returns the first error dropped since the last call.
func (p *Displayer) Display() error {
	err := p.err
	p.err = nil
	return err
}

// FillRectangle fills a rectangle.
func (p *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return p.d.FillRect(int(x), int(y), int(width), int(height), image565.Color565(c.R, c.G, c.B))
}

// SetScroll sets the first display row of the scrolling area.
func (p *Displayer) SetScroll(line int16) {
	p.keep(p.d.SetScroll(int(line)))
}

// SetRotation rotates the display.
func (p *Displayer) SetRotation(r drivers.Rotation) error {
	return p.d.SetRotation(r)
}

// Err returns the first error dropped since the last Display.
func (p *Displayer) Err() error {
	return p.err
}

func (p *Displayer) keep(err error) {
	if p.err == nil {
		p.err = err
	}
}
