package bargraph

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

// row is one SetCursor call followed by the bytes written after it.
type row struct {
	page, col int
	data      []byte
}

// recorder is a Sink that records the cursor/byte sequence.
type recorder struct {
	rows  []row
	calls int
}

func (r *recorder) SetCursor(page, column int) error {
	r.calls++
	r.rows = append(r.rows, row{page: page, col: column})
	return nil
}

func (r *recorder) WriteByte(b byte) error {
	r.calls++
	if len(r.rows) == 0 {
		return errors.New("recorder: write before SetCursor")
	}
	last := &r.rows[len(r.rows)-1]
	last.data = append(last.data, b)
	return nil
}

// repeat returns n copies of b.
func repeat(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestRegionHeight(t *testing.T) {
	tests := []struct {
		r    Region
		want int
	}{
		{Region{StartPage: 0, EndPage: 0}, 8},
		{Region{StartPage: 2, EndPage: 3}, 16},
		{Region{StartPage: 0, EndPage: 7}, 64},
	}
	for _, tt := range tests {
		if got := tt.r.Height(); got != tt.want {
			t.Errorf("%+v.Height() = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		name string
		r    Region
		want Orientation
	}{
		{"wide single page", Region{StartPage: 0, EndPage: 0, Columns: 20}, Horizontal},
		{"width equals height", Region{StartPage: 0, EndPage: 1, Columns: 16}, Vertical},
		{"one wider than height", Region{StartPage: 0, EndPage: 1, Columns: 17}, Horizontal},
		{"tall", Region{StartPage: 0, EndPage: 7, Columns: 10}, Vertical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Orientation(); got != tt.want {
				t.Errorf("Orientation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtent(t *testing.T) {
	horizontal := Region{StartPage: 0, EndPage: 0, Columns: 20} // usable 16
	vertical := Region{StartPage: 0, EndPage: 2, Columns: 8}    // usable 20

	tests := []struct {
		name    string
		percent uint8
		r       Region
		want    int
	}{
		{"zero", 0, horizontal, 0},
		{"half", 50, horizontal, 8},
		{"full", 100, horizontal, 16},
		{"rounds down", 3, horizontal, 0}, // 0.48
		{"exact quarter", 25, horizontal, 4},
		{"rounds to nearest", 22, horizontal, 4}, // 3.52
		{"clamped", 255, horizontal, 16},
		{"just above 100", 101, horizontal, 16},
		{"vertical half", 50, vertical, 10},
		{"vertical full", 100, vertical, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extent(tt.percent, tt.r); got != tt.want {
				t.Errorf("Extent(%d, %+v) = %d, want %d", tt.percent, tt.r, got, tt.want)
			}
		})
	}
}

func TestExtentMonotonic(t *testing.T) {
	regions := []Region{
		{StartPage: 0, EndPage: 0, Columns: 5},
		{StartPage: 0, EndPage: 0, Columns: 128},
		{StartPage: 0, EndPage: 1, Columns: 16},
		{StartPage: 0, EndPage: 7, Columns: 12},
	}
	for _, r := range regions {
		prev := 0
		for p := 0; p <= 255; p++ {
			bar := Extent(uint8(p), r)
			if bar < prev {
				t.Errorf("%+v: Extent(%d) = %d < Extent(%d) = %d", r, p, bar, p-1, prev)
			}
			prev = bar
		}
		if want := r.length() - 4; prev != want {
			t.Errorf("%+v: Extent(100) = %d, want %d", r, prev, want)
		}
	}
}

func TestDrawHorizontalSingleRow(t *testing.T) {
	var rec recorder
	if err := Draw(&rec, 50, Region{StartPage: 0, EndPage: 0, StartColumn: 10, Columns: 20}); err != nil {
		t.Fatal(err)
	}
	if len(rec.rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rec.rows))
	}
	got := rec.rows[0]
	if got.page != 0 || got.col != 10 {
		t.Errorf("cursor = (%d, %d), want (0, 10)", got.page, got.col)
	}
	want := concat([]byte{0xFF, 0x81}, repeat(0xBD, 8), repeat(0x81, 9), []byte{0xFF})
	if !bytes.Equal(got.data, want) {
		t.Errorf("row = % X\nwant  % X", got.data, want)
	}
}

func TestDrawHorizontalMultiRow(t *testing.T) {
	var rec recorder
	// 3 pages, 30 columns: usable 26, 50% -> 13
	if err := Draw(&rec, 50, Region{StartPage: 2, EndPage: 4, StartColumn: 0, Columns: 30}); err != nil {
		t.Fatal(err)
	}
	want := []row{
		{2, 0, concat([]byte{0xFF, 0x01}, repeat(0xFD, 13), repeat(0x01, 14), []byte{0xFF})},
		{3, 0, concat([]byte{0xFF, 0x00}, repeat(0xFF, 13), repeat(0x00, 14), []byte{0xFF})},
		{4, 0, concat([]byte{0xFF, 0x80}, repeat(0xBF, 13), repeat(0x80, 14), []byte{0xFF})},
	}
	assertRows(t, rec.rows, want)
}

func TestDrawVerticalTwoPages(t *testing.T) {
	tests := []struct {
		percent uint8
		top     byte
		bottom  byte
	}{
		{0, 0x01, 0x80},
		{50, 0x01, 0xBF},  // bar 6: bottom page full, top empty
		{75, 0xE1, 0xBF},  // bar 9: 3 pixels into the top page
		{100, 0xFD, 0xBF}, // bar 12
		{17, 0x01, 0xB0},  // bar 2
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d%%", tt.percent), func(t *testing.T) {
			var rec recorder
			if err := Draw(&rec, tt.percent, Region{StartPage: 0, EndPage: 1, StartColumn: 3, Columns: 8}); err != nil {
				t.Fatal(err)
			}
			want := []row{
				{0, 3, concat([]byte{0xFF, 0x01}, repeat(tt.top, 4), []byte{0x01, 0xFF})},
				{1, 3, concat([]byte{0xFF, 0x80}, repeat(tt.bottom, 4), []byte{0x80, 0xFF})},
			}
			assertRows(t, rec.rows, want)
		})
	}
}

func TestDrawVerticalMiddleRows(t *testing.T) {
	// 4 pages: usable 28. 50% -> bar 14: bottom page full (6), page 2 full
	// (reach 14), page 1 empty (reach 22), top empty.
	var rec recorder
	if err := Draw(&rec, 50, Region{StartPage: 0, EndPage: 3, StartColumn: 0, Columns: 6}); err != nil {
		t.Fatal(err)
	}
	want := []row{
		{0, 0, []byte{0xFF, 0x01, 0x01, 0x01, 0x01, 0xFF}},
		{1, 0, []byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0xFF}},
		{2, 0, []byte{0xFF, 0x00, 0xFF, 0xFF, 0x00, 0xFF}},
		{3, 0, []byte{0xFF, 0x80, 0xBF, 0xBF, 0x80, 0xFF}},
	}
	assertRows(t, rec.rows, want)

	// 64% -> bar 18: page 1 gets 4 pixels (shift 4).
	rec = recorder{}
	if err := Draw(&rec, 64, Region{StartPage: 0, EndPage: 3, StartColumn: 0, Columns: 6}); err != nil {
		t.Fatal(err)
	}
	if got := rec.rows[1].data[2]; got != 0xF0 {
		t.Errorf("page 1 fill = 0x%02X, want 0xF0", got)
	}
}

func TestDrawNoOp(t *testing.T) {
	tests := []struct {
		name string
		r    Region
	}{
		{"too narrow", Region{StartPage: 0, EndPage: 0, StartColumn: 0, Columns: 3}},
		{"four columns", Region{StartPage: 0, EndPage: 3, StartColumn: 0, Columns: 4}},
		{"vertical single page", Region{StartPage: 0, EndPage: 0, StartColumn: 0, Columns: 8}},
		{"vertical single page narrow", Region{StartPage: 5, EndPage: 5, StartColumn: 0, Columns: 5}},
		{"inverted pages", Region{StartPage: 3, EndPage: 1, StartColumn: 0, Columns: 40}},
	}
	for _, tt := range tests {
		for _, p := range []uint8{0, 50, 100, 255} {
			t.Run(fmt.Sprintf("%s/%d", tt.name, p), func(t *testing.T) {
				var rec recorder
				if err := Draw(&rec, p, tt.r); err != nil {
					t.Fatal(err)
				}
				if rec.calls != 0 {
					t.Errorf("sink received %d calls, want 0", rec.calls)
				}
			})
		}
	}
}

func TestDrawMinimumWidth(t *testing.T) {
	tests := []struct {
		name string
		r    Region
		want []row
	}{
		{
			"vertical, 5 columns",
			Region{StartPage: 0, EndPage: 1, StartColumn: 0, Columns: 5},
			[]row{
				{0, 0, []byte{0xFF, 0x01, 0xFD, 0x01, 0xFF}},
				{1, 0, []byte{0xFF, 0x80, 0xBF, 0x80, 0xFF}},
			},
		},
		{
			"single page, narrowest horizontal",
			Region{StartPage: 0, EndPage: 0, StartColumn: 0, Columns: 9},
			[]row{
				{0, 0, concat([]byte{0xFF, 0x81}, repeat(0xBD, 5), []byte{0x81, 0xFF})},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec recorder
			if err := Draw(&rec, 100, tt.r); err != nil {
				t.Fatal(err)
			}
			assertRows(t, rec.rows, tt.want)
		})
	}
}

func TestDrawClampsPercent(t *testing.T) {
	r := Region{StartPage: 1, EndPage: 2, StartColumn: 4, Columns: 40}
	var full, over recorder
	if err := Draw(&full, 100, r); err != nil {
		t.Fatal(err)
	}
	if err := Draw(&over, 200, r); err != nil {
		t.Fatal(err)
	}
	assertRows(t, over.rows, full.rows)
}

func TestDrawRowLength(t *testing.T) {
	for startPage := 0; startPage < 3; startPage++ {
		for endPage := startPage; endPage < 8; endPage++ {
			for cols := MinColumns; cols <= 70; cols++ {
				r := Region{StartPage: startPage, EndPage: endPage, StartColumn: 1, Columns: cols}
				for p := 0; p <= 110; p++ {
					var rec recorder
					if err := Draw(&rec, uint8(p), r); err != nil {
						t.Fatal(err)
					}
					if !r.drawable() {
						continue
					}
					if len(rec.rows) != endPage-startPage+1 {
						t.Fatalf("%+v %d%%: got %d rows, want %d", r, p, len(rec.rows), endPage-startPage+1)
					}
					for i, row := range rec.rows {
						if row.page != startPage+i || row.col != 1 {
							t.Fatalf("%+v %d%%: row %d cursor = (%d, %d)", r, p, i, row.page, row.col)
						}
						if len(row.data) != cols {
							t.Fatalf("%+v %d%%: row %d has %d bytes, want %d", r, p, i, len(row.data), cols)
						}
					}
				}
			}
		}
	}
}

func TestDrawIdempotent(t *testing.T) {
	r := Region{StartPage: 0, EndPage: 3, StartColumn: 7, Columns: 20}
	for _, p := range []uint8{0, 33, 66, 100} {
		var a, b recorder
		if err := Draw(&a, p, r); err != nil {
			t.Fatal(err)
		}
		if err := Draw(&b, p, r); err != nil {
			t.Fatal(err)
		}
		assertRows(t, b.rows, a.rows)
	}
}

// failingSink fails on the n-th call.
type failingSink struct {
	recorder
	n int
}

var errBus = errors.New("bus failure")

func (f *failingSink) SetCursor(page, column int) error {
	if f.calls+1 == f.n {
		f.calls++
		return errBus
	}
	return f.recorder.SetCursor(page, column)
}

func (f *failingSink) WriteByte(b byte) error {
	if f.calls+1 == f.n {
		f.calls++
		return errBus
	}
	return f.recorder.WriteByte(b)
}

func TestDrawStopsOnSinkError(t *testing.T) {
	r := Region{StartPage: 0, EndPage: 1, StartColumn: 0, Columns: 40}
	for _, n := range []int{1, 2, 10, 42, 43} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			f := &failingSink{n: n}
			if err := Draw(f, 50, r); !errors.Is(err, errBus) {
				t.Fatalf("Draw() error = %v, want %v", err, errBus)
			}
			if f.calls != n {
				t.Errorf("sink received %d calls, want %d", f.calls, n)
			}
		})
	}
}

func assertRows(t *testing.T, got, want []row) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].page != want[i].page || got[i].col != want[i].col {
			t.Errorf("row %d cursor = (%d, %d), want (%d, %d)", i, got[i].page, got[i].col, want[i].page, want[i].col)
		}
		if !bytes.Equal(got[i].data, want[i].data) {
			t.Errorf("row %d = % X\nwant    % X", i, got[i].data, want[i].data)
		}
	}
}
