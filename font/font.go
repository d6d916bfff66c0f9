// Package font renders fixed width glyphs into page organized display memory.
//
// Two fonts are compiled in: a 5x7 font covering ASCII and Latin-1, drawn in a
// single page, and a 13x16 digit font drawn across two pages. Glyphs are
// stored as column bytes, least significant bit on top, and are streamed as-is
// through a Sink.
package font

// Sink is the byte oriented write primitive of a page addressed display.
type Sink interface {
	SetCursor(page, column int) error
	WriteByte(b byte) error
}

const (
	// SmallWidth is the number of columns of a 5x7 glyph.
	SmallWidth = 5
	// SmallAdvance is the horizontal pitch of 5x7 text, glyph plus spacing.
	SmallAdvance = SmallWidth + 1
	// BigWidth is the number of columns of a 13x16 digit.
	BigWidth = 13
	// BigAdvance is the horizontal pitch of 13x16 digits.
	BigAdvance = BigWidth + 2
)

// Small returns the columns of r in the 5x7 font. Runes outside ASCII
// 0x20-0x7E and Latin-1 0xA0-0xFF render as '?'.
func Small(r rune) [SmallWidth]byte {
	switch {
	case r >= 0x20 && r <= 0x7E:
		return small[r-0x20]
	case r >= 0xA0 && r <= 0xFF:
		return small[r-0xA0+95]
	default:
		return small['?'-0x20]
	}
}

// Big returns the upper and lower page columns of r in the 13x16 font. ok is
// false for anything but "+,-./0123456789".
func Big(r rune) (upper, lower [BigWidth]byte, ok bool) {
	if r < '+' || r > '9' {
		return upper, lower, false
	}
	g := &big[r-'+']
	copy(upper[:], g[:BigWidth])
	copy(lower[:], g[BigWidth:])
	return upper, lower, true
}

// PutChar draws r at page and column followed by one blank column.
func PutChar(s Sink, r rune, page, column int) error {
	g := Small(r)
	return write(s, page, column, g[:], 1)
}

// Print draws str starting at page and column, one glyph every SmallAdvance
// columns.
func Print(s Sink, str string, page, column int) error {
	for _, r := range str {
		if err := PutChar(s, r, page, column); err != nil {
			return err
		}
		column += SmallAdvance
	}
	return nil
}

// PutBigDigit draws r over page and page+1 followed by two blank columns.
// Characters without a big glyph are drawn as a blank cell of the same size.
func PutBigDigit(s Sink, r rune, page, column int) error {
	upper, lower, ok := Big(r)
	if !ok {
		// Zero glyphs plus spacing give the blank cell.
		upper, lower = [BigWidth]byte{}, [BigWidth]byte{}
	}
	if err := write(s, page, column, upper[:], BigAdvance-BigWidth); err != nil {
		return err
	}
	return write(s, page+1, column, lower[:], BigAdvance-BigWidth)
}

// PrintBigDigits draws str with the 13x16 font, one glyph every BigAdvance
// columns.
func PrintBigDigits(s Sink, str string, page, column int) error {
	for _, r := range str {
		if err := PutBigDigit(s, r, page, column); err != nil {
			return err
		}
		column += BigAdvance
	}
	return nil
}

// write positions the cursor, sends cols and pads with blank columns.
func write(s Sink, page, column int, cols []byte, blank int) error {
	if err := s.SetCursor(page, column); err != nil {
		return err
	}
	for _, b := range cols {
		if err := s.WriteByte(b); err != nil {
			return err
		}
	}
	for i := 0; i < blank; i++ {
		if err := s.WriteByte(0); err != nil {
			return err
		}
	}
	return nil
}
