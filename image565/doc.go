// Package image565 provides the 16-bit RGB565 colour type and image format
// used by the ST7789 display controller.
//
// The ST7789 is configured for 16 bits per pixel (COLMOD 0x55). Each pixel is
// sent as two bytes, most significant byte first:
//
//	bit   76543210  76543210
//	      RRRRRGGG  GGGBBBBB
//	      byte 0    byte 1
//
// This package provides:
//
// - RGB565: a color.Color holding a packed 5-6-5 value
// - Model: a color model converting standard Go colors to RGB565
// - Color565: the 8-bit per channel to RGB565 packing used by the driver
// - Image: a draw.Image whose Pix slice can be streamed to the panel as is
//
// Example usage:
//
//	img := image565.NewImage(image.Rect(0, 0, 240, 320))
//	img.SetRGB565(10, 20, image565.RGB565(image565.Color565(255, 0, 0)))
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package image565
