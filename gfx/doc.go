// Package gfx is the drawing engine of the ST7789 driver.
//
// It rasterizes shapes, renders the twelve bitmap fonts of package font and
// blits 1-bit, RGB565 and RGB888 bitmaps. Every operation is expressed as
// one or more "set window, then stream pixels" pairs on a Target, so the
// engine does not know which controller it drives.
//
// Shape primitives clip silently and only report transport errors. Text and
// bitmap calls validate their arguments first and return a Code without
// touching the Target when validation fails.
//
// An Engine is not safe for concurrent use.
package gfx
