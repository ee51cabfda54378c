package gfx

import (
	"errors"
	"testing"

	"github.com/flavioheleno/st7789/font"
)

// drawAny draws c with the overload matching the current font.
func drawAny(e *Engine, x, y int, c byte) error {
	if e.Font().Fixed {
		return e.DrawCharFixed(x, y, c, White, Black)
	}
	return e.DrawChar(x, y, c, White, Black, 1)
}

func TestDrawCharASCIIRange(t *testing.T) {
	tests := []struct {
		id  font.ID
		out []byte
	}{
		{font.Default, []byte{0xFF}},
		{font.Thick, []byte{0x00, 0x1F, 'a', ']', 0x7F}},
		{font.SevenSeg, []byte{0x1F, 0x7F, 0xFF}},
		{font.Wide, []byte{0x1F, 'z', '['}},
		{font.Tiny, []byte{0x0A, 0x7F}},
		{font.HomeSpun, []byte{0x1F, 0x80}},
		{font.Bignum, []byte{',', ';', ' ', 'A'}},
		{font.Mednum, []byte{',', ';', 0x00}},
		{font.ArialRound, []byte{0x1F, 0x7F}},
		{font.ArialBold, []byte{0x1F, 0x7F}},
		{font.Mia, []byte{0x1F, 0x7F}},
		{font.Dedica, []byte{0x1F, 0xFE}},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			e, r := newTestEngine(t, 240, 320)
			if err := e.SelectFont(tt.id); err != nil {
				t.Fatal(err)
			}
			for _, c := range tt.out {
				if err := drawAny(e, 0, 0, c); !errors.Is(err, CharFontASCIIRange) {
					t.Errorf("char %#x: error = %v, want CharFontASCIIRange", c, err)
				}
			}
			if len(r.windows) != 0 {
				t.Errorf("rejected characters issued %d windows", len(r.windows))
			}
		})
	}
}

func TestDrawCharWrongFont(t *testing.T) {
	for id := font.Default; id <= font.Dedica; id++ {
		t.Run(id.String(), func(t *testing.T) {
			e, r := newTestEngine(t, 240, 320)
			if err := e.SelectFont(id); err != nil {
				t.Fatal(err)
			}
			fixed := id == font.Bignum || id == font.Mednum
			sized := e.DrawChar(0, 0, '0', White, Black, 1)
			unsized := e.DrawCharFixed(0, 0, '0', White, Black)
			if fixed {
				if !errors.Is(sized, WrongFont) {
					t.Errorf("DrawChar error = %v, want WrongFont", sized)
				}
				if unsized != nil {
					t.Errorf("DrawCharFixed error = %v, want nil", unsized)
				}
			} else {
				if sized != nil {
					t.Errorf("DrawChar error = %v, want nil", sized)
				}
				if !errors.Is(unsized, WrongFont) {
					t.Errorf("DrawCharFixed error = %v, want WrongFont", unsized)
				}
			}
			if len(r.windows) != 1 {
				t.Errorf("got %d windows, want only the accepted call", len(r.windows))
			}
		})
	}
}

func TestDrawCharWindow(t *testing.T) {
	e, r := newTestEngine(t, 240, 320)
	if err := e.DrawChar(0, 0, 'A', White, Black, 2); err != nil {
		t.Fatalf("DrawChar error = %v", err)
	}
	if len(r.windows) != 1 {
		t.Fatalf("got %d windows, want 1", len(r.windows))
	}
	w := r.windows[0]
	if w.x0 != 0 || w.y0 != 0 || w.x1 != 9 || w.y1 != 15 {
		t.Errorf("window = (%d,%d)-(%d,%d), want (0,0)-(9,15)", w.x0, w.y0, w.x1, w.y1)
	}
	if len(w.pix) != 2*10*16 {
		t.Errorf("streamed %d bytes, want %d", len(w.pix), 2*10*16)
	}
	if x, y := e.Cursor(); x != 11 || y != 0 {
		t.Errorf("Cursor() = (%d, %d), want (11, 0)", x, y)
	}
	if r.count(White) == 0 {
		t.Error("glyph has no foreground pixels")
	}
	// Every glyph pixel is a 2x2 block.
	for y := 0; y < 16; y += 2 {
		for x := 0; x < 10; x += 2 {
			c := r.at(x, y)
			if r.at(x+1, y) != c || r.at(x, y+1) != c || r.at(x+1, y+1) != c {
				t.Fatalf("block at (%d, %d) is not uniform", x, y)
			}
		}
	}
}

func TestDrawCharGlyphBits(t *testing.T) {
	r := newRecorder(240, 320)
	fonts := font.New()
	d := font.Table[font.Tiny-1]
	glyphs := make([]byte, d.TableSize())
	// '!' is a vertical bar in column 1, rows 0-5.
	glyphs[3+1] = 0x3F
	if err := fonts.Load(font.Tiny, glyphs); err != nil {
		t.Fatal(err)
	}
	e := New(r, &Options{Fonts: fonts})
	if err := e.SelectFont(font.Tiny); err != nil {
		t.Fatal(err)
	}
	if err := e.DrawChar(20, 30, '!', Red, Blue, 1); err != nil {
		t.Fatal(err)
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 3; col++ {
			want := Blue
			if col == 1 && row < 6 {
				want = Red
			}
			if got := r.at(20+col, 30+row); got != want {
				t.Errorf("pixel (%d, %d) = %#04x, want %#04x", col, row, got, want)
			}
		}
	}
}

func TestDrawCharValidation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *font.Registry)
		x, y  int
		c     byte
		size  int
		want  error
	}{
		{"screen x", nil, 400, 0, 'A', 1, CharScreenBounds},
		{"screen y", nil, 0, 400, 'A', 1, CharScreenBounds},
		{"negative x", nil, -1, 0, 'A', 1, CharScreenBounds},
		{"right edge", nil, 235, 0, 'A', 1, nil},
		{"right edge scaled", nil, 235, 0, 'A', 2, CharScreenBounds},
		{"bottom edge", nil, 0, 312, 'A', 1, nil},
		{"size zero", nil, 0, 0, 'A', 0, nil},
		{"not enabled", func(r *font.Registry) { r.Disable(font.Default) }, 0, 0, 'A', 1, FontNotEnabled},
		{"nil table", func(r *font.Registry) { r.Load(font.Default, nil) }, 0, 0, 'A', 1, FontPtrNullptr},
		{"range before bounds", nil, 400, 0, 0xFF, 1, CharFontASCIIRange},
		{"bounds before enabled", func(r *font.Registry) { r.Disable(font.Default) }, 400, 0, 'A', 1, CharScreenBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, r := newTestEngine(t, 240, 320)
			if tt.setup != nil {
				tt.setup(e.Fonts())
			}
			err := e.DrawChar(tt.x, tt.y, tt.c, White, Black, tt.size)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if len(r.windows) != 0 {
				t.Error("a rejected character touched the target")
			}
		})
	}
}

func TestDrawText(t *testing.T) {
	e, r := newTestEngine(t, 240, 320)
	if err := e.DrawText(5, 55, []byte("Hello"), White, Black, 2); err != nil {
		t.Fatalf("DrawText error = %v", err)
	}
	// Five cells of 10 pixels, each followed by one pixel of spacing.
	if x, y := e.Cursor(); x != 5+5*(10+1) || y != 55 {
		t.Errorf("Cursor() = (%d, %d), want (60, 55)", x, y)
	}
	if len(r.windows) != 5 {
		t.Fatalf("got %d windows, want 5", len(r.windows))
	}
	for i, w := range r.windows {
		if x := 5 + i*11; w.x0 != x || w.y0 != 55 {
			t.Errorf("window %d starts at (%d, %d), want (%d, 55)", i, w.x0, w.y0, x)
		}
	}
}

func TestDrawTextWrap(t *testing.T) {
	e, r := newTestEngine(t, 240, 320)
	text := []byte("Error Check Test 802, results to usb")
	if err := e.DrawText(5, 55, text, Red, Black, 2); err != nil {
		t.Fatalf("DrawText error = %v", err)
	}
	if len(r.windows) != len(text) {
		t.Fatalf("got %d windows, want %d", len(r.windows), len(text))
	}
	wrapped := 0
	for _, w := range r.windows {
		if w.x1 >= 240 {
			t.Fatalf("window %+v crosses the right edge", w)
		}
		if w.y0 > 55 {
			wrapped++
			if w.y0 != 55+16 {
				t.Errorf("wrapped line at y=%d, want 71", w.y0)
			}
		}
	}
	if wrapped == 0 {
		t.Error("text never wrapped")
	}

	e, _ = newTestEngine(t, 240, 320)
	e.SetTextWrap(false)
	if err := e.DrawText(5, 55, text, Red, Black, 2); !errors.Is(err, CharScreenBounds) {
		t.Errorf("unwrapped DrawText error = %v, want CharScreenBounds", err)
	}
}

func TestDrawTextErrors(t *testing.T) {
	e, r := newTestEngine(t, 240, 320)
	if err := e.DrawText(0, 0, nil, White, Black, 1); !errors.Is(err, CharArrayNullptr) {
		t.Errorf("DrawText(nil) error = %v, want CharArrayNullptr", err)
	}
	if err := e.DrawTextFixed(0, 0, nil, White, Black); !errors.Is(err, CharArrayNullptr) {
		t.Errorf("DrawTextFixed(nil) error = %v, want CharArrayNullptr", err)
	}
	if err := e.DrawText(0, 0, []byte{}, White, Black, 1); err != nil {
		t.Errorf("DrawText(empty) error = %v", err)
	}
	if err := e.DrawTextFixed(0, 0, []byte("12"), White, Black); !errors.Is(err, WrongFont) {
		t.Errorf("DrawTextFixed on Default error = %v, want WrongFont", err)
	}
	if len(r.windows) != 0 {
		t.Fatalf("rejected text issued %d windows", len(r.windows))
	}

	// The first failing character stops the call.
	if err := e.SelectFont(font.Thick); err != nil {
		t.Fatal(err)
	}
	if err := e.DrawText(0, 0, []byte("ABcD"), White, Black, 1); !errors.Is(err, CharFontASCIIRange) {
		t.Errorf("DrawText error = %v, want CharFontASCIIRange", err)
	}
	if len(r.windows) != 2 {
		t.Errorf("got %d windows, want 2", len(r.windows))
	}
}

func TestDrawTextFixed(t *testing.T) {
	e, r := newTestEngine(t, 240, 320)
	if err := e.SelectFont(font.Bignum); err != nil {
		t.Fatal(err)
	}
	if err := e.DrawTextFixed(10, 20, []byte("12:30"), Green, Black); err != nil {
		t.Fatalf("DrawTextFixed error = %v", err)
	}
	if len(r.windows) != 5 {
		t.Fatalf("got %d windows, want 5", len(r.windows))
	}
	w := r.windows[0]
	if w.x0 != 10 || w.y0 != 20 || w.x1 != 25 || w.y1 != 51 {
		t.Errorf("first window = (%d,%d)-(%d,%d), want (10,20)-(25,51)", w.x0, w.y0, w.x1, w.y1)
	}
	if x, _ := e.Cursor(); x != 10+5*17 {
		t.Errorf("cursor x = %d, want %d", x, 10+5*17)
	}
	if err := e.DrawText(0, 0, []byte("1"), White, Black, 1); !errors.Is(err, WrongFont) {
		t.Errorf("DrawText on Bignum error = %v, want WrongFont", err)
	}
}
