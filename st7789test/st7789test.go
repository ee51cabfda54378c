// Package st7789test is meant to be used to test code drawing on an ST7789
// without hardware.
//
// Panel fakes the SPI port and decodes the command stream into an image
// addressed the way CASET and RASET address the controller RAM. MADCTL is
// recorded but not applied.
package st7789test

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/flavioheleno/st7789/image565"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Controller commands decoded by Panel.
const (
	caset  = 0x2A
	raset  = 0x2B
	ramwr  = 0x2C
	madctl = 0x36
)

// Op is one command with its parameters.
//
// Pixel data following RAMWR is not recorded in Data.
type Op struct {
	Cmd  byte
	Data []byte
}

// Panel implements spi.Port and spi.Conn.
//
// DC must be passed as the data/command pin of the driver under test.
type Panel struct {
	DC    *gpiotest.Pin
	MaxTx int   // MaxTxSize, 0 for no limit
	Err   error // Returned by Tx when set

	// Guarded by mu while a driver runs; read directly once it is idle.
	mu     sync.Mutex
	Ops    []Op
	RAM    *image565.Image // Pixels by CASET/RASET address, 320x320 to fit any rotation
	MADCTL byte
	Freq   physic.Frequency
	Mode   spi.Mode
	Txs    int // Number of Tx calls

	x0, x1, y0, y1 int
	x, y           int
	writing        bool
	odd            []byte
}

// NewPanel returns a Panel with a blank RAM.
func NewPanel() *Panel {
	return &Panel{
		DC:  &gpiotest.Pin{N: "DC", Num: -1},
		RAM: image565.NewImage(image.Rect(0, 0, 320, 320)),
	}
}

// String implements spi.Port.
func (p *Panel) String() string {
	return "st7789test"
}

// Connect implements spi.Port.
func (p *Panel) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	if bits != 8 {
		return nil, fmt.Errorf("st7789test: unsupported bits %d", bits)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Freq = f
	p.Mode = mode
	return p, nil
}

// LimitSpeed implements spi.Port.
func (p *Panel) LimitSpeed(f physic.Frequency) error {
	return nil
}

// Duplex implements conn.Conn.
func (p *Panel) Duplex() conn.Duplex {
	return conn.Half
}

// MaxTxSize implements conn.Limits.
func (p *Panel) MaxTxSize() int {
	return p.MaxTx
}

// TxPackets implements spi.Conn.
func (p *Panel) TxPackets(pkts []spi.Packet) error {
	for _, pkt := range pkts {
		if err := p.Tx(pkt.W, pkt.R); err != nil {
			return err
		}
	}
	return nil
}

// Tx implements conn.Conn.
func (p *Panel) Tx(w, r []byte) error {
	if p.Err != nil {
		return p.Err
	}
	if len(r) != 0 {
		return errors.New("st7789test: read not supported")
	}
	if p.MaxTx > 0 && len(w) > p.MaxTx {
		return fmt.Errorf("st7789test: transfer of %d bytes exceeds %d", len(w), p.MaxTx)
	}
	p.DC.Lock()
	dc := p.DC.L
	p.DC.Unlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.Txs++
	if dc == gpio.Low {
		for _, c := range w {
			p.command(c)
		}
		return nil
	}
	if len(p.Ops) == 0 {
		return errors.New("st7789test: data before any command")
	}
	if p.writing {
		p.pixels(w)
		return nil
	}
	last := &p.Ops[len(p.Ops)-1]
	last.Data = append(last.Data, w...)
	p.param(last)
	return nil
}

func (p *Panel) command(c byte) {
	p.Ops = append(p.Ops, Op{Cmd: c})
	p.writing = c == ramwr
	p.odd = p.odd[:0]
	if p.writing {
		p.x, p.y = p.x0, p.y0
	}
}

func (p *Panel) param(op *Op) {
	switch op.Cmd {
	case caset:
		if len(op.Data) == 4 {
			p.x0 = int(op.Data[0])<<8 | int(op.Data[1])
			p.x1 = int(op.Data[2])<<8 | int(op.Data[3])
		}
	case raset:
		if len(op.Data) == 4 {
			p.y0 = int(op.Data[0])<<8 | int(op.Data[1])
			p.y1 = int(op.Data[2])<<8 | int(op.Data[3])
		}
	case madctl:
		if len(op.Data) == 1 {
			p.MADCTL = op.Data[0]
		}
	}
}

func (p *Panel) pixels(b []byte) {
	if len(p.odd) == 1 && len(b) > 0 {
		p.put(p.odd[0], b[0])
		p.odd = p.odd[:0]
		b = b[1:]
	}
	for ; len(b) >= 2; b = b[2:] {
		p.put(b[0], b[1])
	}
	if len(b) == 1 {
		p.odd = append(p.odd, b[0])
	}
}

func (p *Panel) put(hi, lo byte) {
	p.RAM.SetRGB565(p.x, p.y, image565.RGB565(uint16(hi)<<8|uint16(lo)))
	p.x++
	if p.x > p.x1 {
		p.x = p.x0
		p.y++
		if p.y > p.y1 {
			p.y = p.y0
		}
	}
}

// Commands returns the command bytes sent so far, in order.
func (p *Panel) Commands() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]byte, len(p.Ops))
	for i, op := range p.Ops {
		out[i] = op.Cmd
	}
	return out
}

// Last returns the most recent command, or false if none was sent.
func (p *Panel) Last() (Op, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Ops) == 0 {
		return Op{}, false
	}
	return p.Ops[len(p.Ops)-1], true
}

// Snapshot returns a copy of the RAM and the last MADCTL value.
func (p *Panel) Snapshot() (*image565.Image, byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ram := *p.RAM
	ram.Pix = append([]byte(nil), p.RAM.Pix...)
	return &ram, p.MADCTL
}

// Reset forgets recorded commands. RAM is kept.
func (p *Panel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Ops = nil
	p.Txs = 0
	p.writing = false
}

var _ spi.Port = (*Panel)(nil)
var _ spi.Conn = (*Panel)(nil)
var _ conn.Limits = (*Panel)(nil)
