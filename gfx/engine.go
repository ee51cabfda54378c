package gfx

import (
	"io"
	"log/slog"

	"github.com/flavioheleno/st7789/font"
)

// Target is the window-addressed pixel sink the engine draws on.
//
// SetAddrWindow selects the inclusive rectangle (x0, y0)-(x1, y1) in
// current screen coordinates. WritePixels streams big-endian RGB565 pixels
// into it in row-major order and must follow SetAddrWindow directly.
type Target interface {
	SetAddrWindow(x0, y0, x1, y1 int) error
	WritePixels(p []byte) error
	// Dimensions returns the current screen size, after rotation.
	Dimensions() (w, h int)
}

// Options configures an Engine.
type Options struct {
	// Fonts is the font registry. nil means an empty registry with every
	// font disabled.
	Fonts *font.Registry
	// Logger receives debug records for rejected calls. nil discards them.
	Logger *slog.Logger
}

// Engine draws shapes, text and bitmaps on a Target.
//
// The cursor, text style and current font persist across calls until
// changed.
type Engine struct {
	t     Target
	fonts *font.Registry
	font  *font.Descriptor
	log   *slog.Logger

	cursorX, cursorY int
	fg, bg           uint16
	size             int
	wrap             bool
}

// New returns an Engine drawing on t, with the Default font selected,
// white on black text of size 1 and wrapping enabled.
func New(t Target, opts *Options) *Engine {
	if opts == nil {
		opts = &Options{}
	}
	e := &Engine{
		t:     t,
		fonts: opts.Fonts,
		log:   opts.Logger,
		fg:    White,
		bg:    Black,
		size:  1,
		wrap:  true,
	}
	if e.fonts == nil {
		e.fonts = font.New()
	}
	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.font, _ = e.fonts.Lookup(font.Default)
	return e
}

// Fonts returns the engine's font registry.
func (e *Engine) Fonts() *font.Registry {
	return e.fonts
}

// SelectFont makes id the current font. Unknown ids return GenericError and
// leave the selection unchanged.
func (e *Engine) SelectFont(id font.ID) error {
	d, err := e.fonts.Lookup(id)
	if err != nil {
		e.log.Debug("gfx: select font", "id", int(id), "err", err)
		return GenericError
	}
	e.font = d
	return nil
}

// Font returns the descriptor of the current font.
func (e *Engine) Font() *font.Descriptor {
	return e.font
}

// SetCursor moves the text cursor.
func (e *Engine) SetCursor(x, y int) {
	e.cursorX, e.cursorY = x, y
}

// Cursor returns the text cursor.
func (e *Engine) Cursor() (x, y int) {
	return e.cursorX, e.cursorY
}

// SetTextColor sets the text foreground color.
func (e *Engine) SetTextColor(fg uint16) {
	e.fg = fg
}

// SetTextColors sets the text foreground and background colors.
func (e *Engine) SetTextColors(fg, bg uint16) {
	e.fg, e.bg = fg, bg
}

// SetTextSize sets the scale factor of scalable fonts. 0 is treated as 1.
func (e *Engine) SetTextSize(s int) {
	if s < 1 {
		s = 1
	}
	e.size = s
}

// TextSize returns the current scale factor.
func (e *Engine) TextSize() int {
	return e.size
}

// SetTextWrap enables or disables wrapping at the right screen edge.
func (e *Engine) SetTextWrap(wrap bool) {
	e.wrap = wrap
}

// Width returns the current screen width.
func (e *Engine) Width() int {
	w, _ := e.t.Dimensions()
	return w
}

// Height returns the current screen height.
func (e *Engine) Height() int {
	_, h := e.t.Dimensions()
	return h
}

// reject logs a failed validation and returns it as an error.
func (e *Engine) reject(op string, c Code, args ...any) error {
	e.log.Debug("gfx: "+op+" rejected", append([]any{"code", int(c), "reason", c.String()}, args...)...)
	return c.err()
}
