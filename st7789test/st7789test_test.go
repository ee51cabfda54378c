package st7789test

import (
	"bytes"
	"sync"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

func send(t *testing.T, p *Panel, cmd byte, data ...[]byte) {
	t.Helper()
	if err := p.DC.Out(gpio.Low); err != nil {
		t.Fatal(err)
	}
	if err := p.Tx([]byte{cmd}, nil); err != nil {
		t.Fatal(err)
	}
	if err := p.DC.Out(gpio.High); err != nil {
		t.Fatal(err)
	}
	for _, d := range data {
		if err := p.Tx(d, nil); err != nil {
			t.Fatal(err)
		}
	}
}

func TestConnect(t *testing.T) {
	p := NewPanel()
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode3, 8)
	if err != nil {
		t.Fatal(err)
	}
	if c != p || p.Freq != 4*physic.MegaHertz || p.Mode != spi.Mode3 {
		t.Errorf("Connect() recorded %s %v", p.Freq, p.Mode)
	}
	if _, err := p.Connect(physic.MegaHertz, spi.Mode0, 9); err == nil {
		t.Error("expected error for 9 bit words")
	}
}

func TestWindowDecode(t *testing.T) {
	p := NewPanel()
	send(t, p, caset, []byte{0, 10, 0, 11})
	send(t, p, raset, []byte{0x01, 0x00, 0x01, 0x01})
	// Pixels split across transfers, one of them mid pixel.
	send(t, p, ramwr, []byte{0xF8, 0x00, 0x07}, []byte{0xE0, 0x00, 0x1F, 0xFF, 0xFF})

	tests := []struct {
		x, y int
		want uint16
	}{
		{10, 256, 0xF800},
		{11, 256, 0x07E0},
		{10, 257, 0x001F},
		{11, 257, 0xFFFF},
		{12, 256, 0},
	}
	for _, tt := range tests {
		if got := uint16(p.RAM.RGB565At(tt.x, tt.y)); got != tt.want {
			t.Errorf("RAM(%d, %d) = %#04x, want %#04x", tt.x, tt.y, got, tt.want)
		}
	}
	if got := p.Commands(); !bytes.Equal(got, []byte{caset, raset, ramwr}) {
		t.Errorf("Commands() = %#x", got)
	}
	if op, _ := p.Last(); len(op.Data) != 0 {
		t.Errorf("RAMWR recorded %d data bytes, want 0", len(op.Data))
	}
}

func TestMADCTL(t *testing.T) {
	p := NewPanel()
	send(t, p, madctl, []byte{0xC0})
	if p.MADCTL != 0xC0 {
		t.Errorf("MADCTL = %#x, want 0xc0", p.MADCTL)
	}
}

func TestTxErrors(t *testing.T) {
	p := NewPanel()
	if err := p.DC.Out(gpio.High); err != nil {
		t.Fatal(err)
	}
	if err := p.Tx([]byte{1}, nil); err == nil {
		t.Error("expected error for data before any command")
	}
	if err := p.Tx([]byte{1}, []byte{0}); err == nil {
		t.Error("expected error for a read")
	}
	p.MaxTx = 2
	if err := p.Tx([]byte{1, 2, 3}, nil); err == nil {
		t.Error("expected error above MaxTx")
	}
}

func TestReset(t *testing.T) {
	p := NewPanel()
	send(t, p, caset, []byte{0, 0, 0, 0})
	p.Reset()
	if _, ok := p.Last(); ok {
		t.Error("Last() after Reset reported a command")
	}
	if p.Txs != 0 {
		t.Errorf("Txs = %d, want 0", p.Txs)
	}
}

func TestSnapshot(t *testing.T) {
	p := NewPanel()
	send(t, p, madctl, []byte{0x20})
	send(t, p, caset, []byte{0, 0, 0, 0})
	send(t, p, raset, []byte{0, 0, 0, 0})
	send(t, p, ramwr, []byte{0x12, 0x34})
	ram, m := p.Snapshot()
	if m != 0x20 {
		t.Errorf("MADCTL = %#x, want 0x20", m)
	}
	if got := ram.RGB565At(0, 0); got != 0x1234 {
		t.Errorf("snapshot(0, 0) = %#04x, want 0x1234", uint16(got))
	}
	send(t, p, ramwr, []byte{0xFF, 0xFF})
	if got := ram.RGB565At(0, 0); got != 0x1234 {
		t.Error("snapshot shares pixels with the panel")
	}
}

func TestSnapshotWhileWriting(t *testing.T) {
	p := NewPanel()
	send(t, p, caset, []byte{0, 0, 0, 9})
	send(t, p, raset, []byte{0, 0, 0, 9})
	send(t, p, ramwr)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			if err := p.Tx([]byte{0xF8, 0x00}, nil); err != nil {
				t.Error(err)
				return
			}
		}
	}()
	for i := 0; i < 100; i++ {
		p.Snapshot()
		p.Commands()
	}
	wg.Wait()
	if got := p.RAM.RGB565At(9, 9); got != 0xF800 {
		t.Errorf("RAM(9, 9) = %#04x, want 0xf800", uint16(got))
	}
}
