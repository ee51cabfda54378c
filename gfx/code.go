package gfx

import "strconv"

// Code is the closed set of validation outcomes of text and bitmap calls.
//
// Success is never returned as an error; calls report it as nil.
type Code uint8

// Return codes.
const (
	Success                Code = 0
	Reserved               Code = 1
	WrongFont              Code = 2  // Sized call on a fixed font or unsized call on a scalable one
	CharScreenBounds       Code = 3  // Glyph cell does not fit on the screen
	CharFontASCIIRange     Code = 4  // Character outside the font's ASCII window
	CharArrayNullptr       Code = 5  // Nil text
	FontPtrNullptr         Code = 6  // Missing or short glyph table
	FontNotEnabled         Code = 7  // Font not loaded in the registry
	BitmapNullptr          Code = 8  // Nil bitmap data
	BitmapScreenBounds     Code = 9  // Start point outside the screen
	BitmapLargerThanScreen Code = 10 // Bitmap extends past the screen edge
	BitmapVerticalSize     Code = 11 // Vertical bitmap height not a multiple of 8
	BitmapHorizontalSize   Code = 12 // Horizontal bitmap width not a multiple of 8
	BitmapSize             Code = 13 // Data length does not match the dimensions
	BufferSize             Code = 14 // Buffer length does not match the dimensions
	BufferNullptr          Code = 15
	ShapeScreenBounds      Code = 16 // Shape outside the screen
	IconScreenWidth        Code = 17 // Icon wider than the screen
	GenericError           Code = 18
)

var codeNames = [...]string{
	"success",
	"reserved",
	"wrong font",
	"character out of screen bounds",
	"character outside font ASCII range",
	"nil character array",
	"nil font table",
	"font not enabled",
	"nil bitmap",
	"bitmap out of screen bounds",
	"bitmap larger than screen",
	"bitmap height not a multiple of 8",
	"bitmap width not a multiple of 8",
	"bitmap size mismatch",
	"buffer size mismatch",
	"nil buffer",
	"shape out of screen bounds",
	"icon wider than screen",
	"generic error",
}

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// Error implements error.
func (c Code) Error() string {
	return "gfx: " + c.String()
}

// err converts c to an error, mapping Success to nil.
func (c Code) err() error {
	if c == Success {
		return nil
	}
	return c
}
