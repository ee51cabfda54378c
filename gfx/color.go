package gfx

// RGB565 color constants.
const (
	Black   uint16 = 0x0000
	Blue    uint16 = 0x001F
	Red     uint16 = 0xF800
	Green   uint16 = 0x07E0
	Cyan    uint16 = 0x07FF
	Magenta uint16 = 0xF81F
	Yellow  uint16 = 0xFFE0
	White   uint16 = 0xFFFF
	Tan     uint16 = 0xED01
	Grey    uint16 = 0x9CD1
	Brown   uint16 = 0x6201
	DGreen  uint16 = 0x01C0
	Orange  uint16 = 0xFC00
	Navy    uint16 = 0x000F
	DCyan   uint16 = 0x03EF
	Maroon  uint16 = 0x7800
	Purple  uint16 = 0x780F
	Olive   uint16 = 0x7BE0
	LGrey   uint16 = 0xC618
	DGrey   uint16 = 0x7BEF
	GYellow uint16 = 0xAFE5
	Pink    uint16 = 0xFC18
)
