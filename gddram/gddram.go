// Package gddram models the display data RAM of a SSD1309 controller in page
// addressing mode.
//
// Writes go through a cursor: SetCursor selects a page and column, each
// WriteByte stores one column of 8 pixels and moves the column forward. Past
// the last column the cursor wraps to column 0 of the same page, as the
// controller does. The page never changes on its own.
//
// RAM is used by the ssd1309 driver as a shadow of the panel memory and can be
// used on its own to render without hardware.
package gddram

import (
	"fmt"
	"image"

	"github.com/flavioheleno/ssd1309/image1bit"
)

// RAM is an in-memory display data RAM with a write cursor.
type RAM struct {
	img  *image1bit.VerticalLSB
	page int
	col  int
}

// New returns a cleared RAM for a panel of w columns and h pixel rows.
// h is rounded up to a whole number of pages.
func New(w, h int) *RAM {
	return &RAM{img: image1bit.NewVerticalLSB(image.Rect(0, 0, w, h))}
}

// SetCursor positions the write cursor.
func (r *RAM) SetCursor(page, column int) error {
	if page < 0 || page >= r.img.Pages() {
		return fmt.Errorf("gddram: page %d out of range [0, %d)", page, r.img.Pages())
	}
	if column < 0 || column >= r.img.Stride {
		return fmt.Errorf("gddram: column %d out of range [0, %d)", column, r.img.Stride)
	}
	r.page, r.col = page, column
	return nil
}

// WriteByte stores b at the cursor and advances the column.
func (r *RAM) WriteByte(b byte) error {
	r.img.Pix[r.page*r.img.Stride+r.col] = b
	r.col++
	if r.col == r.img.Stride {
		r.col = 0
	}
	return nil
}

// Cursor returns the current write position.
func (r *RAM) Cursor() (page, column int) {
	return r.page, r.col
}

// Columns returns the width of a page.
func (r *RAM) Columns() int {
	return r.img.Stride
}

// Pages returns the number of pages.
func (r *RAM) Pages() int {
	return r.img.Pages()
}

// Image returns the RAM content. The returned image shares storage with r.
func (r *RAM) Image() *image1bit.VerticalLSB {
	return r.img
}

// Load replaces the whole content with pix, laid out as in
// image1bit.VerticalLSB. The cursor is left untouched.
func (r *RAM) Load(pix []byte) error {
	if len(pix) != len(r.img.Pix) {
		return fmt.Errorf("gddram: invalid buffer size; expected %d bytes, got %d bytes", len(r.img.Pix), len(pix))
	}
	copy(r.img.Pix, pix)
	return nil
}

// Clear sets every pixel to Off.
func (r *RAM) Clear() {
	clear(r.img.Pix)
}
