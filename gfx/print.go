package gfx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Base is the radix used to print integers.
type Base int

// Supported bases.
const (
	Bin Base = 2
	Oct Base = 8
	Dec Base = 10
	Hex Base = 16
)

// FloatDigits is the number of decimals Print uses for floats.
const FloatDigits = 2

// maxFloat is the largest magnitude PrintFloat renders; above it the value
// prints as "ovf".
const maxFloat = 4294967040.0

// Write draws p at the cursor with the current font, colors and size.
//
// '\n' moves the cursor to the start of the next line and '\r' to the start
// of the current one. Fixed size fonts ignore the text size. Write stops at
// the first character that cannot be drawn and returns the number of bytes
// consumed before it.
func (e *Engine) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := e.writeByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString is Write for a string.
func (e *Engine) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if err := e.writeByte(s[i]); err != nil {
			return i, err
		}
	}
	return len(s), nil
}

func (e *Engine) writeByte(c byte) error {
	d := e.font
	size := e.size
	if d.Fixed {
		size = 1
	}
	switch c {
	case '\n':
		e.cursorX = 0
		e.cursorY += d.Height * size
		return nil
	case '\r':
		e.cursorX = 0
		return nil
	}
	if e.wrap && e.cursorX+d.Width*size > e.Width() {
		e.cursorX = 0
		e.cursorY += d.Height * size
	}
	if d.Fixed {
		return e.DrawCharFixed(e.cursorX, e.cursorY, c, e.fg, e.bg)
	}
	return e.DrawChar(e.cursorX, e.cursorY, c, e.fg, e.bg, size)
}

// Print draws each operand at the cursor without separators. Integers print
// in base 10, floats with FloatDigits decimals and everything else as
// fmt.Sprint formats it.
func (e *Engine) Print(a ...any) (n int, err error) {
	for _, v := range a {
		m, err := e.WriteString(format(v))
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Println is Print followed by a new line.
func (e *Engine) Println(a ...any) (n int, err error) {
	if n, err = e.Print(a...); err != nil {
		return n, err
	}
	m, err := e.WriteString("\n")
	return n + m, err
}

// PrintNumber draws n in the given base.
func (e *Engine) PrintNumber(n int64, base Base) (int, error) {
	return e.WriteString(FormatNumber(n, base))
}

// PrintFloat draws f with digits decimals.
func (e *Engine) PrintFloat(f float64, digits int) (int, error) {
	return e.WriteString(FormatFloat(f, digits))
}

func format(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return FormatNumber(int64(v), Dec)
	case int8:
		return FormatNumber(int64(v), Dec)
	case int16:
		return FormatNumber(int64(v), Dec)
	case int32:
		return FormatNumber(int64(v), Dec)
	case int64:
		return FormatNumber(v, Dec)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return FormatFloat(float64(v), FloatDigits)
	case float64:
		return FormatFloat(v, FloatDigits)
	}
	return fmt.Sprint(v)
}

// FormatNumber formats n in base. Only base 10 carries a sign; other bases
// print the two's complement bits with upper case digits, 32 bits wide for
// negative values that fit in an int32 (-1 in hex is FFFFFFFF) and 64 bits
// below that. Bases outside 2..36 fall back to 10.
func FormatNumber(n int64, base Base) string {
	if base < 2 || base > 36 {
		base = Dec
	}
	if base == Dec {
		return strconv.FormatInt(n, 10)
	}
	u := uint64(n)
	if n < 0 && n >= math.MinInt32 {
		u = uint64(uint32(n))
	}
	return strings.ToUpper(strconv.FormatUint(u, int(base)))
}

// FormatFloat formats f with digits decimals, rounding half away from zero.
// NaN prints as "nan", infinities as "inf" and magnitudes beyond 4294967040
// as "ovf".
func FormatFloat(f float64, digits int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 0):
		return "inf"
	case f > maxFloat, f < -maxFloat:
		return "ovf"
	}
	if digits < 0 {
		digits = 0
	}

	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
		f = -f
	}
	rounding := 0.5
	for i := 0; i < digits; i++ {
		rounding /= 10
	}
	f += rounding

	whole := uint64(f)
	rem := f - float64(whole)
	b.WriteString(strconv.FormatUint(whole, 10))
	if digits > 0 {
		b.WriteByte('.')
	}
	for ; digits > 0; digits-- {
		rem *= 10
		d := uint64(rem)
		b.WriteByte(byte('0' + d))
		rem -= float64(d)
	}
	return b.String()
}
