// Package st7789 controls an ST7789 TFT display via SPI.
//
// The ST7789 is a 16-bit RGB565 TFT controller with 240×320 pixels of RAM.
// This driver implements the display.Drawer interface from periph.io and
// embeds a drawing engine for shapes, text and bitmaps.
//
// # Display Characteristics
//
// - 16-bit RGB565 color (65536 colors)
// - Panels of up to 240×320 pixels (typically 240×240, 135×240 or 240×320)
// - Hardware rotation in steps of 90°
// - Hardware vertical scrolling
// - Display inversion, partial, idle and sleep modes
// - 240×320 internal RAM with automatic offsets for smaller panels
//
// # Hardware Connection
//
// Connect the ST7789 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → SPI Clock (SCLK)
//	SDA         → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//	BLK         → 3.3V or a GPIO for the backlight
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/flavioheleno/st7789"
//		"github.com/flavioheleno/st7789/gfx"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get Data/Command GPIO pin
//		dcPin := gpioreg.ByName("GPIO25")
//
//		// Create device
//		dev, _ := st7789.NewSPI(spiBus, dcPin, &st7789.Opts{
//			W: 240,
//			H: 240,
//		})
//		defer dev.Halt()
//
//		dev.FillScreen(gfx.Black)
//		dev.FillCircle(120, 120, 60, gfx.Red)
//		dev.DrawText(10, 10, []byte("Hello"), gfx.White, gfx.Black, 2)
//	}
//
// # Using Hardware Reset Pin (Optional)
//
// If your display has a reset (RST) pin connected to a GPIO, you can provide it
// in the Opts struct for clean hardware initialization:
//
//	rstPin := gpioreg.ByName("GPIO27")
//
//	dev, _ := st7789.NewSPI(spiBus, dcPin, &st7789.Opts{
//		W:   240,
//		H:   240,
//		RST: rstPin,  // Optional reset pin
//	})
//
// The driver performs a hardware reset sequence (RST high, low, high with
// 10ms between each) during initialization. If RST is nil, the driver relies
// on the software reset command.
//
// # Drawing
//
// Every drawing call opens an address window on the controller and streams
// big-endian RGB565 pixels into it. Nothing is buffered in memory, so calls
// take effect immediately.
//
// Shapes are clipped to the screen. Text and bitmap calls check their
// arguments and return a gfx.Code error when they are rejected:
//
//	if err := dev.DrawBitmap(0, 0, 30, 8, gfx.White, gfx.Black, data); err != nil {
//		// gfx.BitmapHorizontalSize: width must be a multiple of 8
//	}
//
// Any image.Image can be drawn with Draw or DrawImage; colors are converted
// to RGB565 with the image565 package.
//
// # Fonts
//
// Twelve bitmap fonts are generated at startup by the font/fontgen package.
// Fonts are selected by ID:
//
//	dev.SelectFont(font.Wide)
//	dev.SetCursor(0, 0)
//	fmt.Fprintf(dev, "%d C", 21)
//
// The numeric fonts (Bignum, Mednum) only hold '-' to ':' and are drawn with
// DrawCharFixed and DrawTextFixed at their native size:
//
//	dev.SelectFont(font.Bignum)
//	dev.DrawTextFixed(0, 40, []byte("12:45"), gfx.Green, gfx.Black)
//
// # Rotation
//
// The display supports four rotations. Width and height swap at 90° and 270°:
//
//	dev.SetRotation(drivers.Rotation90)
//
// # Hardware Scrolling
//
// The display supports vertical scrolling between fixed top and bottom areas:
//
//	dev.SetScrollArea(20, 20)
//	for line := 0; line < 280; line++ {
//		dev.SetScroll(20 + line)
//		time.Sleep(10 * time.Millisecond)
//	}
//	dev.NormalMode()
//
// # TinyGo Drivers
//
// Displayer returns an adapter implementing drivers.Displayer from
// tinygo.org/x/drivers, so tinyfont and tinyterm can draw on the display.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.newhavendisplay.com/appnotes/datasheets/LCDs/ST7789V.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package st7789
