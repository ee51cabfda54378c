package st7789

import (
	"errors"
	"image/color"
	"testing"

	"github.com/flavioheleno/st7789/gfx"
	"github.com/flavioheleno/st7789/st7789test"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

var white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func inked(p *st7789test.Panel, x0, y0, x1, y1 int, c uint16) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if ram(p, x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestDisplayerSize(t *testing.T) {
	dev, _ := newDev(t, &Opts{W: 135, H: 240})
	d := dev.Displayer()
	if x, y := d.Size(); x != 135 || y != 240 {
		t.Errorf("Size() = %dx%d, want 135x240", x, y)
	}
	if err := d.SetRotation(drivers.Rotation90); err != nil {
		t.Fatal(err)
	}
	if x, y := d.Size(); x != 240 || y != 135 {
		t.Errorf("Size() after rotation = %dx%d, want 240x135", x, y)
	}
}

func TestDisplayerPixels(t *testing.T) {
	dev, p := newDev(t, nil)
	d := dev.Displayer()
	d.SetPixel(3, 4, color.RGBA{R: 0xFF, A: 0xFF})
	if got := ram(p, 3, 4); got != gfx.Red {
		t.Errorf("SetPixel wrote %#04x, want red", got)
	}
	if err := d.FillRectangle(10, 10, 4, 2, white); err != nil {
		t.Fatal(err)
	}
	if n := inked(p, 10, 10, 14, 12, gfx.White); n != 8 {
		t.Errorf("FillRectangle painted %d pixels, want 8", n)
	}
	if err := d.Display(); err != nil {
		t.Errorf("Display() error = %v", err)
	}
}

func TestDisplayerHeldError(t *testing.T) {
	dev, p := newDev(t, nil)
	d := dev.Displayer()
	p.Err = errors.New("bus fault")
	d.SetPixel(0, 0, white)
	d.SetScroll(3)
	if d.Err() == nil {
		t.Fatal("Err() = nil after a failed SetPixel")
	}
	if err := d.Display(); err == nil || err.Error() != "st7789: bus fault" {
		t.Errorf("Display() error = %v, want the SetPixel error", err)
	}
	if err := d.Display(); err != nil {
		t.Errorf("second Display() error = %v, want nil", err)
	}
}

func TestTinyfont(t *testing.T) {
	dev, p := newDev(t, nil)
	tinyfont.WriteLine(dev.Displayer(), &tinyfont.TomThumb, 0, 6, "TEST", white)
	if inked(p, 0, 0, 20, 8, gfx.White) == 0 {
		t.Error("tinyfont drew nothing")
	}
}

func TestTinyterm(t *testing.T) {
	dev, p := newDev(t, nil)
	disp := dev.Displayer()
	term := tinyterm.NewTerminal(disp)
	term.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: 10,
		FontOffset: 6,
	})
	if _, err := term.Write([]byte("hello\r\n")); err != nil {
		t.Fatal(err)
	}
	if err := disp.Display(); err != nil {
		t.Fatal(err)
	}
	if inked(p, 0, 0, 40, 10, gfx.Black) == 400 {
		t.Error("tinyterm drew nothing")
	}
}
