// Package image1bit provides a 1-bit image format laid out like the SSD1309
// display data RAM.
//
// Pixels are stored in pages of 8 rows. Each byte holds one column of a page,
// bit 0 being the topmost pixel.
package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a monochrome pixel, true meaning lit.
type Bit bool

const (
	// On is a lit pixel.
	On = Bit(true)
	// Off is a dark pixel.
	Off = Bit(false)
)

// RGBA converts the Bit to standard RGBA, lit pixels being white.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luma weights as color.GrayModel, thresholded at mid-scale
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image stored as display pages.
// Pix[page*Stride+x] holds column x of the given page.
type VerticalLSB struct {
	Pix    []byte          // Pixel data (8 vertical pixels per byte)
	Stride int             // Bytes per page
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height is rounded up to a whole number of pages.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	pages := (h + 7) / 8
	return &VerticalLSB{
		Pix:    make([]byte, w*pages),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return Bit(p.Pix[offset]&mask != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Pages returns the number of 8 pixel high pages in the image.
func (p *VerticalLSB) Pages() int {
	if p.Stride == 0 {
		return 0
	}
	return len(p.Pix) / p.Stride
}

// Page returns the bytes of the given page, sharing storage with Pix.
func (p *VerticalLSB) Page(page int) []byte {
	return p.Pix[page*p.Stride : (page+1)*p.Stride]
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	x -= p.Rect.Min.X
	y -= p.Rect.Min.Y
	offset = (y/8)*p.Stride + x
	mask = 1 << uint(y&7)
	return
}
