// Package image1bit provides a 1-bit monochrome image format matching the
// SSD1309 display data RAM.
//
// The controller organizes its memory in pages. A page is a horizontal band 8
// pixels high and each byte of a page holds one column of 8 vertically stacked
// pixels, least significant bit on top.
//
// Memory layout example for the first 3 columns of page 0:
//
//	Column:  0     1     2
//	Byte:    0x01  0x81  0xFF
//	         (0x01 = only the top pixel lit)
//	         (0x81 = top and bottom pixels lit)
//	         (0xFF = the whole column lit)
//
// This package provides:
//
// - Bit: A color type representing a lit or dark pixel
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation with the controller page layout
//
// Example usage:
//
//	// Create a 128x64 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//
//	// Light a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Raw page bytes can be sent to the display as-is
//	page := img.Page(2)
package image1bit
