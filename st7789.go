package st7789

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"time"

	"github.com/flavioheleno/st7789/font"
	"github.com/flavioheleno/st7789/font/fontgen"
	"github.com/flavioheleno/st7789/gfx"
	"github.com/flavioheleno/st7789/image565"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"tinygo.org/x/drivers"
)

// Command set.
const (
	SWRESET  = 0x01 // Software reset
	SLPIN    = 0x10 // Sleep in
	SLPOUT   = 0x11 // Sleep out
	PTLON    = 0x12 // Partial mode on
	NORON    = 0x13 // Normal display mode on
	INVOFF   = 0x20 // Display inversion off
	INVON    = 0x21 // Display inversion on
	DISPOFF  = 0x28 // Display off
	DISPON   = 0x29 // Display on
	CASET    = 0x2A // Column address set
	RASET    = 0x2B // Row address set
	RAMWR    = 0x2C // Memory write
	VSCRDEF  = 0x33 // Vertical scrolling definition
	MADCTL   = 0x36 // Memory data access control
	VSCRSADD = 0x37 // Vertical scroll start address
	IDLEOFF  = 0x38 // Idle mode off
	IDLEON   = 0x39 // Idle mode on
	COLMOD   = 0x3A // Interface pixel format
)

// MADCTL bits.
const (
	MADCTL_MY  = 0x80 // Row address order
	MADCTL_MX  = 0x40 // Column address order
	MADCTL_MV  = 0x20 // Row/column exchange
	MADCTL_ML  = 0x10 // Vertical refresh order
	MADCTL_BGR = 0x08 // BGR order
	MADCTL_RGB = 0x00 // RGB order
)

// Controller RAM size.
const (
	RAMWidth  = 240
	RAMHeight = 320
)

// sleep is replaced in tests.
var sleep = time.Sleep

// Opts is the configuration for the ST7789 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 240, must be ≤240)
	H int // Height (default: 320, must be ≤320)

	// Extra start offsets added to the ones derived from the panel size,
	// for panels with manufacturing tolerances.
	ColOffset int
	RowOffset int

	Rotation drivers.Rotation // Initial rotation

	// Optional pins
	RST gpio.PinOut // Reset pin (nil if not used)
	CS  gpio.PinOut // Chip select, for ports that do not drive it (nil if not used)

	MaxHz physic.Frequency // SPI clock (default: 8MHz)

	Fonts  *font.Registry // Fonts for text drawing (default: every built-in font)
	Logger *slog.Logger   // Debug output (default: discarded)
}

// Dev is the device handle for the ST7789 display.
//
// The embedded Engine draws shapes, text and bitmaps on the display.
type Dev struct {
	*gfx.Engine

	// Communication
	c     conn.Conn   // SPI connection
	dc    gpio.PinOut // Data/Command pin
	rst   gpio.PinOut // Reset pin (optional)
	cs    gpio.PinOut // Chip select pin (optional)
	maxTx int         // Largest single transfer, 0 for no limit

	// Geometry fixed at init
	widthStart, heightStart int
	colStart, rowStart      int

	// Geometry after rotation
	width, height  int
	xStart, yStart int
	rotation       drivers.Rotation

	// State
	halted bool
	log    *slog.Logger
}

var errHalted = errors.New("st7789: halted")

// NewSPI creates a new ST7789 device connected via SPI.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The dc (Data/Command) GPIO pin must be provided.
//
// opts can be nil to use defaults (240x320 display).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.W == 0 && o.H == 0 {
		o.W, o.H = RAMWidth, RAMHeight
	}
	if o.W <= 0 || o.W > RAMWidth {
		return nil, errors.New("st7789: width must be between 1 and 240")
	}
	if o.H <= 0 || o.H > RAMHeight {
		return nil, errors.New("st7789: height must be between 1 and 320")
	}
	if o.ColOffset < 0 || o.RowOffset < 0 {
		return nil, errors.New("st7789: offsets must not be negative")
	}
	if dc == nil {
		return nil, errors.New("st7789: dc pin is required")
	}
	if o.MaxHz == 0 {
		o.MaxHz = 8 * physic.MegaHertz
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.Fonts == nil {
		fonts, err := fontgen.Builtin()
		if err != nil {
			return nil, fmt.Errorf("st7789: %w", err)
		}
		o.Fonts = fonts
	}

	c, err := p.Connect(o.MaxHz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("st7789: %w", err)
	}

	d := &Dev{
		c:           c,
		dc:          dc,
		rst:         o.RST,
		cs:          o.CS,
		widthStart:  o.W,
		heightStart: o.H,
		width:       o.W,
		height:      o.H,
		log:         o.Logger,
	}
	if l, ok := c.(conn.Limits); ok {
		d.maxTx = l.MaxTxSize()
	}
	d.Engine = gfx.New(d, &gfx.Options{Fonts: o.Fonts, Logger: o.Logger})

	if err := d.init(&o); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	if d.cs != nil {
		if err := d.cs.Out(gpio.High); err != nil {
			return fmt.Errorf("st7789: failed to pull CS high: %w", err)
		}
	}

	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		for _, l := range []gpio.Level{gpio.High, gpio.Low, gpio.High} {
			if err := d.rst.Out(l); err != nil {
				return fmt.Errorf("st7789: failed to drive RST %s: %w", l, err)
			}
			sleep(10 * time.Millisecond)
		}
	}

	w, h := d.widthStart, d.heightStart
	steps := []struct {
		cmd   byte
		data  []byte
		delay time.Duration
	}{
		{SWRESET, nil, 150 * time.Millisecond},
		{SLPOUT, nil, 500 * time.Millisecond},
		{COLMOD, []byte{0x55}, 10 * time.Millisecond}, // 16 bit color
		{MADCTL, []byte{0x08}, 0},
		{CASET, []byte{0, 0, byte(w >> 8), byte(w)}, 0},
		{RASET, []byte{0, 0, byte(h >> 8), byte(h)}, 0},
		{INVON, nil, 10 * time.Millisecond},
		{NORON, nil, 10 * time.Millisecond},
		{DISPON, nil, 10 * time.Millisecond},
	}
	for _, s := range steps {
		if err := d.sendCommand(s.cmd, s.data...); err != nil {
			return err
		}
		if s.delay > 0 {
			sleep(s.delay)
		}
	}

	d.colStart, d.rowStart = StartOffsets(w, h)
	d.colStart += opts.ColOffset
	d.rowStart += opts.RowOffset
	d.log.Debug("st7789: init", "w", w, "h", h, "colStart", d.colStart, "rowStart", d.rowStart)

	return d.SetRotation(opts.Rotation)
}

// StartOffsets returns the column and row of a w x h panel inside the
// controller RAM, before Opts.ColOffset and Opts.RowOffset are added.
func StartOffsets(w, h int) (col, row int) {
	switch {
	case w == 240 && h == 240:
		// 1.3" and 1.54" panels are right justified.
		return RAMWidth - w, RAMHeight - h
	case w == 135 && h == 240:
		// 1.14" panel, centred with an odd width.
		return (RAMWidth - w + 1) / 2, (RAMHeight - h) / 2
	default:
		return (RAMWidth - w) / 2, (RAMHeight - h) / 2
	}
}

// tx sends one buffer with the chip selected, split to the port limit.
func (d *Dev) tx(b []byte) (err error) {
	if d.cs != nil {
		if err := d.cs.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7789: failed to pull CS low: %w", err)
		}
		defer func() {
			if e := d.cs.Out(gpio.High); e != nil && err == nil {
				err = fmt.Errorf("st7789: failed to pull CS high: %w", e)
			}
		}()
	}
	for len(b) > 0 {
		n := len(b)
		if d.maxTx > 0 && n > d.maxTx {
			n = d.maxTx
		}
		if err := d.c.Tx(b[:n], nil); err != nil {
			return fmt.Errorf("st7789: %w", err)
		}
		b = b[n:]
	}
	return nil
}

// sendCommand sends a command byte followed by its parameters.
func (d *Dev) sendCommand(cmd byte, data ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.tx([]byte{cmd}); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return d.sendData(data)
}

// sendData sends a slice of data bytes.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.tx(data)
}

// SetAddrWindow selects the inclusive rectangle (x0, y0)-(x1, y1) for the
// next WritePixels and starts a RAM write.
func (d *Dev) SetAddrWindow(x0, y0, x1, y1 int) error {
	if d.halted {
		return errHalted
	}
	x0 += d.xStart
	x1 += d.xStart
	y0 += d.yStart
	y1 += d.yStart
	if err := d.sendCommand(CASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	if err := d.sendCommand(RASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1)); err != nil {
		return err
	}
	return d.sendCommand(RAMWR)
}

// WritePixels streams big-endian RGB565 pixels into the current window.
func (d *Dev) WritePixels(p []byte) error {
	if d.halted {
		return errHalted
	}
	return d.sendData(p)
}

// Dimensions returns the display size after rotation.
func (d *Dev) Dimensions() (w, h int) {
	return d.width, d.height
}

// SetRotation rotates the display. Width and height swap at 90° and 270°.
func (d *Dev) SetRotation(r drivers.Rotation) error {
	if d.halted {
		return errHalted
	}
	r %= 4
	var madctl byte
	switch r {
	case drivers.Rotation0:
		madctl = MADCTL_MX | MADCTL_MY | MADCTL_RGB
		d.width, d.height = d.widthStart, d.heightStart
		d.xStart, d.yStart = d.colStart, d.rowStart
	case drivers.Rotation90:
		madctl = MADCTL_MY | MADCTL_MV | MADCTL_RGB
		d.width, d.height = d.heightStart, d.widthStart
		d.xStart, d.yStart = d.rowStart, d.colStart
	case drivers.Rotation180:
		madctl = MADCTL_RGB
		d.width, d.height = d.widthStart, d.heightStart
		d.xStart, d.yStart = d.colStart, d.rowStart
	case drivers.Rotation270:
		madctl = MADCTL_MX | MADCTL_MV | MADCTL_RGB
		d.width, d.height = d.heightStart, d.widthStart
		d.xStart, d.yStart = d.rowStart, d.colStart
	}
	d.rotation = r
	d.log.Debug("st7789: rotation", "rotation", int(r), "w", d.width, "h", d.height)
	return d.sendCommand(MADCTL, madctl)
}

// Rotation returns the current rotation.
func (d *Dev) Rotation() drivers.Rotation {
	return d.rotation
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image565.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Draw draws an image onto the display.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	// Clip to display bounds
	r := dst.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))
	srcRect := image.Rectangle{Min: sp, Max: sp.Add(r.Size())}.Intersect(src.Bounds())
	if srcRect.Empty() {
		return nil
	}
	r.Min = r.Min.Add(srcRect.Min.Sub(sp))
	r.Max = r.Min.Add(srcRect.Size())

	if err := d.SetAddrWindow(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1); err != nil {
		return err
	}
	return d.WritePixels(image565.Encode(src, srcRect))
}

// Invert enables or disables color inversion.
//
// The panel runs inverted after init (INVON), so Invert(false) restores the
// colors that init sets up.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	cmd := byte(INVON)
	if invert {
		cmd = INVOFF
	}
	return d.sendCommand(cmd)
}

// Enable turns the display output on or off.
func (d *Dev) Enable(on bool) error {
	if d.halted {
		return errHalted
	}
	cmd := byte(DISPOFF)
	if on {
		cmd = DISPON
	}
	return d.sendCommand(cmd)
}

// Partial enables partial mode, or returns to normal mode.
func (d *Dev) Partial(on bool) error {
	if d.halted {
		return errHalted
	}
	cmd := byte(NORON)
	if on {
		cmd = PTLON
	}
	return d.sendCommand(cmd)
}

// Idle enables or disables idle mode (8 colors).
func (d *Dev) Idle(on bool) error {
	if d.halted {
		return errHalted
	}
	cmd := byte(IDLEOFF)
	if on {
		cmd = IDLEON
	}
	return d.sendCommand(cmd)
}

// Sleep puts the controller to sleep or wakes it up, then waits for it to
// settle.
func (d *Dev) Sleep(on bool) error {
	if d.halted {
		return errHalted
	}
	if on {
		if err := d.sendCommand(SLPIN); err != nil {
			return err
		}
		sleep(5 * time.Millisecond)
		return nil
	}
	if err := d.sendCommand(SLPOUT); err != nil {
		return err
	}
	sleep(120 * time.Millisecond)
	return nil
}

// NormalMode returns the display to normal mode, ending partial mode and
// scrolling.
func (d *Dev) NormalMode() error {
	if d.halted {
		return errHalted
	}
	return d.sendCommand(NORON)
}

// SetScrollArea defines a vertical scrolling area between a fixed top and
// bottom area, in display rows.
func (d *Dev) SetScrollArea(top, bottom int) error {
	if d.halted {
		return errHalted
	}
	if top < 0 || bottom < 0 || top+bottom > d.heightStart {
		return errors.New("st7789: scroll area out of range")
	}
	// Extend the fixed areas over RAM rows the panel does not show.
	top += d.rowStart
	bottom += RAMHeight - d.heightStart - d.rowStart
	if bottom < 0 {
		bottom = 0
	}
	if d.rotation == drivers.Rotation180 {
		top, bottom = bottom, top
	}
	scroll := RAMHeight - top - bottom
	return d.sendCommand(VSCRDEF,
		byte(top>>8), byte(top),
		byte(scroll>>8), byte(scroll),
		byte(bottom>>8), byte(bottom))
}

// SetScroll sets the first display row of the scrolling area.
func (d *Dev) SetScroll(line int) error {
	if d.halted {
		return errHalted
	}
	if d.rotation == drivers.Rotation180 {
		line = (RAMHeight - 1 - d.rowStart) - line
	} else {
		line += d.rowStart
	}
	return d.sendCommand(VSCRSADD, byte(line>>8), byte(line))
}

// Halt turns the display off.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	return d.sendCommand(DISPOFF)
}

// PowerDown halts the display and drives the control pins low.
func (d *Dev) PowerDown() error {
	if err := d.Halt(); err != nil {
		return err
	}
	for _, p := range []gpio.PinOut{d.dc, d.rst, d.cs} {
		if p == nil {
			continue
		}
		if err := p.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7789: power down: %w", err)
		}
	}
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7789.Dev{%dx%d}", d.width, d.height)
}
