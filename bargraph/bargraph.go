// Package bargraph renders a framed, partially filled bar into page organized
// display memory.
//
// The bar occupies a Region of whole pages and a run of columns. It is drawn
// horizontally, growing left to right, when the region is wider than it is
// tall, and vertically, growing bottom to top, otherwise. A one pixel frame
// plus a one pixel gap on every side is reserved, so the fill track is 4
// pixels shorter than the bar.
//
// Output is streamed one byte per column through a Sink, one page row at a
// time. Nothing is read back from the display and every byte of the region is
// overwritten.
package bargraph

// Sink is the byte oriented write primitive of a page addressed display.
//
// WriteByte stores 8 vertical pixels, least significant bit on top, at the
// cursor and advances the cursor by one column.
type Sink interface {
	SetCursor(page, column int) error
	WriteByte(b byte) error
}

// MinColumns is the narrowest bar that can be drawn.
const MinColumns = 5

// border is the number of pixels reserved at each end of the fill track: the
// frame line and a blank gap.
const border = 2

// Region is the page/column rectangle a bar is drawn into.
type Region struct {
	StartPage   int
	EndPage     int // inclusive
	StartColumn int
	Columns     int
}

// Height returns the region height in pixels.
func (r Region) Height() int {
	return (r.EndPage-r.StartPage)*8 + 8
}

// Orientation is the direction the bar grows in.
type Orientation int

const (
	// Horizontal bars grow from left to right.
	Horizontal Orientation = iota
	// Vertical bars grow from bottom to top.
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Orientation returns Horizontal when the region is strictly wider than tall.
func (r Region) Orientation() Orientation {
	if r.Columns > r.Height() {
		return Horizontal
	}
	return Vertical
}

// length returns the size of the region along the bar's long axis.
func (r Region) length() int {
	if r.Orientation() == Horizontal {
		return r.Columns
	}
	return r.Height()
}

// drawable reports whether a bar fits in the region.
func (r Region) drawable() bool {
	if r.EndPage < r.StartPage || r.Columns < MinColumns {
		return false
	}
	// A vertical bar needs at least two pages.
	if r.Orientation() == Vertical && r.StartPage == r.EndPage {
		return false
	}
	return true
}

// Extent returns the number of filled pixels along the bar's long axis for
// percent. percent is clamped to 100 and the result is rounded to nearest.
func Extent(percent uint8, r Region) int {
	if percent > 100 {
		percent = 100
	}
	usable := r.length() - 2*border
	if usable <= 0 {
		return 0
	}
	return (usable*int(percent) + 50) / 100
}

// Draw renders a bar filled to percent into r. percent above 100 is drawn as
// 100. Regions narrower than MinColumns and single page vertical regions are
// silently skipped. The first Sink error aborts the drawing and is returned.
func Draw(s Sink, percent uint8, r Region) error {
	if !r.drawable() {
		return nil
	}
	bar := Extent(percent, r)
	for page := r.StartPage; page <= r.EndPage; page++ {
		var row []byte
		if r.Orientation() == Horizontal {
			row = horizontalRow(r, page, bar)
		} else {
			row = verticalRow(r, page, bar)
		}
		if err := writeRow(s, page, r.StartColumn, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(s Sink, page, column int, row []byte) error {
	if err := s.SetCursor(page, column); err != nil {
		return err
	}
	for _, b := range row {
		if err := s.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// rowRole is the position of a page row within the region.
type rowRole int

const (
	onlyRow rowRole = iota
	topRow
	bottomRow
	middleRow
)

func roleOf(r Region, page int) rowRole {
	switch {
	case r.StartPage == r.EndPage:
		return onlyRow
	case page == r.StartPage:
		return topRow
	case page == r.EndPage:
		return bottomRow
	default:
		return middleRow
	}
}

// Horizontal bar column patterns per row role. Empty columns carry only the
// top/bottom frame pixels, filled columns add the fill while keeping the gap
// next to the frame.
var (
	horizontalEmpty  = [...]byte{onlyRow: 0x81, topRow: 0x01, bottomRow: 0x80, middleRow: 0x00}
	horizontalFilled = [...]byte{onlyRow: 0xBD, topRow: 0xFD, bottomRow: 0xBF, middleRow: 0xFF}
)

// horizontalRow returns the Columns bytes of one page row of a horizontal bar.
func horizontalRow(r Region, page, bar int) []byte {
	role := roleOf(r, page)
	row := make([]byte, 0, r.Columns)
	row = append(row, 0xFF, horizontalEmpty[role])
	for i := 0; i < bar; i++ {
		row = append(row, horizontalFilled[role])
	}
	for i := bar; i < r.Columns-3; i++ {
		row = append(row, horizontalEmpty[role])
	}
	return append(row, 0xFF)
}

// verticalRow returns the Columns bytes of one page row of a vertical bar:
// the left frame, an edge column, identical interior columns, an edge column
// and the right frame.
func verticalRow(r Region, page, bar int) []byte {
	var edge, fill byte
	switch roleOf(r, page) {
	case topRow:
		// Bit 0 is the frame, bit 1 the gap. The fill reaches into this
		// page once fewer than 6 pixels of the track remain empty.
		edge = 0x01
		fill = (byte(0xFC) << shift(min(r.Height()-2*border-bar, 6))) | 0x01
	case bottomRow:
		// Bit 7 is the frame, bit 6 the gap, the fill starts at bit 5.
		edge = 0x80
		d := 0
		if bar < 6 {
			d = 6 - bar
		}
		fill = (byte(0xFF) << shift(d)) & 0xBF
	default:
		// reach is the fill height needed to cover this whole page.
		edge = 0x00
		reach := (r.EndPage-page)*8 + 6
		var d int
		switch {
		case bar >= reach:
			d = 0
		case bar+8 <= reach:
			d = 8
		default:
			d = reach - bar
		}
		fill = byte(0xFF) << shift(d)
	}

	row := make([]byte, 0, r.Columns)
	row = append(row, 0xFF, edge)
	for i := border; i < r.Columns-border; i++ {
		row = append(row, fill)
	}
	return append(row, edge, 0xFF)
}

// shift converts a bit count to a shift amount. Shifting a byte by 8 or more
// yields 0, which is the intended empty pattern.
func shift(n int) uint {
	if n < 0 {
		return 0
	}
	return uint(n)
}
