package ssd1309

import (
	"fmt"

	"github.com/flavioheleno/ssd1309/bargraph"
	"github.com/flavioheleno/ssd1309/font"
)

// DrawBargraph draws a framed bar filled to percent inside the region spanning
// startPage to endPage and totalColumns columns from startColumn.
//
// Regions too small to hold a bar are left untouched. See bargraph.Draw.
func (d *Dev) DrawBargraph(percent uint8, startPage, endPage, startColumn, totalColumns int) error {
	return bargraph.Draw(d, percent, bargraph.Region{
		StartPage:   startPage,
		EndPage:     endPage,
		StartColumn: startColumn,
		Columns:     totalColumns,
	})
}

// PutChar draws r with the 5x7 font at page and column.
func (d *Dev) PutChar(r rune, page, column int) error {
	return font.PutChar(d, r, page, column)
}

// Print draws s with the 5x7 font starting at page and column.
func (d *Dev) Print(s string, page, column int) error {
	return font.Print(d, s, page, column)
}

// Printf formats according to a format specifier and draws the result like
// Print.
func (d *Dev) Printf(page, column int, format string, a ...any) error {
	return font.Print(d, fmt.Sprintf(format, a...), page, column)
}

// PutBigDigit draws r with the 13x16 digit font over page and page+1.
func (d *Dev) PutBigDigit(r rune, page, column int) error {
	return font.PutBigDigit(d, r, page, column)
}

// PrintBigDigits draws s with the 13x16 digit font over page and page+1.
func (d *Dev) PrintBigDigits(s string, page, column int) error {
	return font.PrintBigDigits(d, s, page, column)
}

// ShowPicture copies a page organized picture into the region spanning
// startPage to endPage and totalColumns columns from startColumn. pic holds
// one row of totalColumns bytes per page, starting with startPage.
func (d *Dev) ShowPicture(pic []byte, startPage, endPage, startColumn, totalColumns int) error {
	if endPage < startPage || totalColumns <= 0 {
		return nil
	}
	pages := endPage - startPage + 1
	if len(pic) < pages*totalColumns {
		return fmt.Errorf("ssd1309: picture too short; expected %d bytes, got %d bytes", pages*totalColumns, len(pic))
	}
	for i := 0; i < pages; i++ {
		row := pic[i*totalColumns : (i+1)*totalColumns]
		if err := d.writePage(startPage+i, startColumn, row); err != nil {
			return err
		}
	}
	return nil
}
