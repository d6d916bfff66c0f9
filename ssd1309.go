package ssd1309

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/flavioheleno/ssd1309/gddram"
	"github.com/flavioheleno/ssd1309/image1bit"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Command opcodes, see the SSD1309 datasheet chapter 9.
const (
	cmdSetLowColumn       = 0x00
	cmdSetHighColumn      = 0x10
	cmdMemoryMode         = 0x20
	cmdRightScroll        = 0x26
	cmdLeftScroll         = 0x27
	cmdDeactivateScroll   = 0x2E
	cmdActivateScroll     = 0x2F
	cmdSetStartLine       = 0x40
	cmdSetContrast        = 0x81
	cmdSegRemapNormal     = 0xA0
	cmdSegRemapReversed   = 0xA1
	cmdDisplayAllOnResume = 0xA4
	cmdDisplayAllOn       = 0xA5
	cmdNormalDisplay      = 0xA6
	cmdInvertDisplay      = 0xA7
	cmdSetMultiplex       = 0xA8
	cmdDisplayOff         = 0xAE
	cmdDisplayOn          = 0xAF
	cmdSetPageStart       = 0xB0
	cmdComScanInc         = 0xC0
	cmdComScanDec         = 0xC8
	cmdSetDisplayOffset   = 0xD3
	cmdSetClockDiv        = 0xD5
	cmdSetPrecharge       = 0xD9
	cmdSetComPins         = 0xDA
	cmdSetVCOMH           = 0xDB

	pageAddressing = 0x02
)

var errHalted = errors.New("ssd1309: halted")

// DefaultOpts is the configuration used when nil is passed to a constructor.
var DefaultOpts = Opts{
	W:        128,
	H:        64,
	Contrast: 10,
	Addr:     0x3C,
}

// Opts is the configuration for the SSD1309 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, between 8 and 128)
	H int // Height (default: 64, multiple of 8 between 16 and 64)

	// Rotated turns the display by 180° (segment remap and reversed COM scan).
	Rotated bool
	// Sequential selects the sequential COM pin configuration. Try toggling
	// this if every other row appears to be missing.
	Sequential bool
	// SwapLeftRight enables the COM left/right remap.
	SwapLeftRight bool

	// Contrast applied during initialization (0 uses the default).
	Contrast byte

	// Addr is the I²C address (0 uses the default 0x3C).
	Addr uint16

	// Optional hardware reset pin
	RST gpio.PinOut // Reset pin (optional, nil if not used)
}

// Dev is the device handle for the SSD1309 display.
//
// Dev is not safe for concurrent use.
type Dev struct {
	// Communication
	b   bus
	rst gpio.PinOut

	// Display geometry
	rect image.Rectangle

	// ram mirrors the display memory and the controller write cursor.
	ram *gddram.RAM
	// next is lazy initialized on first Draw().
	next *image1bit.VerticalLSB

	// State
	halted bool
}

// NewSPI creates a new SSD1309 device connected via 4-wire SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The dc (Data/Command) GPIO pin must be provided and configured as an output.
//
// opts can be nil to use DefaultOpts.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("ssd1309: a dc pin is required, 3-wire SPI is not supported")
	}
	if err := dc.Out(gpio.Low); err != nil {
		return nil, err
	}
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1309: failed to connect SPI: %w", err)
	}
	return newDev(&spiBus{c: c, dc: dc}, opts)
}

// NewI2C creates a new SSD1309 device connected via I²C.
//
// opts can be nil to use DefaultOpts.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	opts = withDefaults(opts)
	// Maximum clock speed is 1/2.5µs = 400KHz.
	return newDev(&i2cBus{c: &i2c.Dev{Bus: b, Addr: opts.Addr}}, opts)
}

// NewParallel creates a new SSD1309 device connected to an 8080-style 8-bit
// parallel bus driven through GPIO pins.
//
// opts can be nil to use DefaultOpts.
func NewParallel(pins ParallelPins, opts *Opts) (*Dev, error) {
	b, err := newParallelBus(pins)
	if err != nil {
		return nil, err
	}
	return newDev(b, opts)
}

// withDefaults returns a copy of opts with zero values replaced by defaults.
func withDefaults(opts *Opts) *Opts {
	if opts == nil {
		o := DefaultOpts
		return &o
	}
	o := *opts
	if o.Contrast == 0 {
		o.Contrast = DefaultOpts.Contrast
	}
	if o.Addr == 0 {
		o.Addr = DefaultOpts.Addr
	}
	return &o
}

// newDev is the common initialization code that is independent of the
// bus being used.
func newDev(b bus, opts *Opts) (*Dev, error) {
	opts = withDefaults(opts)
	if opts.W < 8 || opts.W > 128 {
		return nil, fmt.Errorf("ssd1309: invalid width %d, must be between 8 and 128", opts.W)
	}
	if opts.H < 16 || opts.H > 64 || opts.H%8 != 0 {
		return nil, fmt.Errorf("ssd1309: invalid height %d, must be a multiple of 8 between 16 and 64", opts.H)
	}

	d := &Dev{
		b:    b,
		rst:  opts.RST,
		rect: image.Rect(0, 0, opts.W, opts.H),
		ram:  gddram.New(opts.W, opts.H),
	}
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1309: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1309: failed to pull RST high: %w", err)
		}
		time.Sleep(time.Millisecond)
	}

	if err := d.b.command(initCommands(opts)...); err != nil {
		return err
	}

	if err := d.Clear(); err != nil {
		return err
	}

	return d.b.command(cmdDisplayOn)
}

// initCommands builds the initialization command sequence for opts.
func initCommands(opts *Opts) []byte {
	segRemap, comScan := byte(cmdSegRemapNormal), byte(cmdComScanInc)
	if opts.Rotated {
		segRemap, comScan = cmdSegRemapReversed, cmdComScanDec
	}

	// Bit 4: alternative COM pin configuration, bit 5: left/right remap.
	comPins := byte(0x02)
	if !opts.Sequential {
		comPins |= 0x10
	}
	if opts.SwapLeftRight {
		comPins |= 0x20
	}

	return []byte{
		cmdDisplayOff,
		cmdSetClockDiv, 0xF0, // Fastest oscillator, divide ratio 1
		cmdSetMultiplex, byte(opts.H - 1),
		cmdSetDisplayOffset, 0x00,
		cmdSetStartLine | 0x00,
		cmdMemoryMode, pageAddressing,
		segRemap,
		comScan,
		cmdSetComPins, comPins,
		cmdSetContrast, opts.Contrast,
		cmdSetPrecharge, 0xF1, // Phase 1: 1 clock, phase 2: 15 clocks
		cmdSetVCOMH, 0x37,
		cmdDisplayAllOnResume,
		cmdNormalDisplay,
	}
}

// SetCursor positions the controller write cursor at page and column.
func (d *Dev) SetCursor(page, column int) error {
	if d.halted {
		return errHalted
	}
	if err := d.ram.SetCursor(page, column); err != nil {
		return fmt.Errorf("ssd1309: %w", err)
	}
	return d.b.command(
		cmdSetPageStart|byte(page),
		cmdSetLowColumn|byte(column&0x0F),
		cmdSetHighColumn|byte(column>>4),
	)
}

// WriteByte writes one column of 8 pixels at the cursor, least significant
// bit on top. The cursor moves to the next column and wraps to column 0 of the
// same page after the last one.
func (d *Dev) WriteByte(b byte) error {
	if d.halted {
		return errHalted
	}
	if err := d.b.data([]byte{b}); err != nil {
		return err
	}
	return d.ram.WriteByte(b)
}

// writePage sends data to page starting at column in a single transfer.
func (d *Dev) writePage(page, column int, data []byte) error {
	if err := d.SetCursor(page, column); err != nil {
		return err
	}
	if err := d.b.data(data); err != nil {
		return err
	}
	for _, b := range data {
		if err := d.ram.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// Clear turns off every pixel.
func (d *Dev) Clear() error {
	zeros := make([]byte, d.rect.Dx())
	for page := 0; page < d.ram.Pages(); page++ {
		if err := d.writePage(page, 0, zeros); err != nil {
			return err
		}
	}
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes raw pixel data to the display in image1bit.VerticalLSB format.
// The data must be exactly d.rect.Dx() * d.rect.Dy() / 8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != len(d.ram.Image().Pix) {
		return 0, errors.New("ssd1309: invalid buffer size")
	}
	if err := d.flush(pixels, true); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the display with differential update optimization.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
//
// Pixels outside dst keep their current content, including anything written
// through WriteByte.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: if source is already VerticalLSB at full size
	if srcImg, ok := src.(*image1bit.VerticalLSB); ok {
		zeroPoint := image.Point{}
		if dst == d.rect && sp == zeroPoint && srcImg.Rect == d.rect {
			return d.flush(srcImg.Pix, false)
		}
	}

	// Slow path: compose over the current content
	if d.next == nil {
		d.next = image1bit.NewVerticalLSB(d.rect)
	}
	copy(d.next.Pix, d.ram.Image().Pix)
	draw.Draw(d.next, dst, src, sp, draw.Src)

	return d.flush(d.next.Pix, false)
}

// flush sends the pages of next that differ from the display memory. With
// full set, every page is sent.
func (d *Dev) flush(next []byte, full bool) error {
	for page := 0; page < d.ram.Pages(); page++ {
		minCol, maxCol := 0, d.rect.Dx()-1
		if !full {
			minCol, maxCol = d.calculateDiff(page, next)
			if minCol > maxCol {
				// No changes
				continue
			}
		}
		start := page * d.rect.Dx()
		if err := d.writePage(page, minCol, next[start+minCol:start+maxCol+1]); err != nil {
			return err
		}
	}
	return nil
}

// calculateDiff compares a page of the display memory with next to find the
// changed columns. Returns (minCol, maxCol) or (1, 0) if no changes.
func (d *Dev) calculateDiff(page int, next []byte) (minCol, maxCol int) {
	width := d.rect.Dx()
	cur := d.ram.Image().Page(page)
	nxt := next[page*width : (page+1)*width]

	minCol, maxCol = 1, 0
	for x := 0; x < width; x++ {
		if cur[x] != nxt[x] {
			minCol = x
			break
		}
	}
	for x := width - 1; x >= 0; x-- {
		if cur[x] != nxt[x] {
			maxCol = x
			break
		}
	}
	return
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errHalted
	}
	return d.b.command(cmdSetContrast, contrast)
}

// Invert inverts the display colors (lit pixels become dark and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	mode := byte(cmdNormalDisplay)
	if invert {
		mode = cmdInvertDisplay
	}
	return d.b.command(mode)
}

// EntireDisplayOn lights every pixel regardless of the memory content when on
// is true. The memory is left untouched.
func (d *Dev) EntireDisplayOn(on bool) error {
	if d.halted {
		return errHalted
	}
	mode := byte(cmdDisplayAllOnResume)
	if on {
		mode = cmdDisplayAllOn
	}
	return d.b.command(mode)
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.b.command(cmdDisplayOff)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1309.Dev{%s, %dx%d}", d.b, d.rect.Dx(), d.rect.Dy())
}

// FrameRate defines the horizontal scroll step interval.
type FrameRate byte

const (
	// Scroll step intervals (in frames)
	FrameRate2   FrameRate = 0x07
	FrameRate3   FrameRate = 0x04
	FrameRate4   FrameRate = 0x05
	FrameRate5   FrameRate = 0x00
	FrameRate25  FrameRate = 0x06
	FrameRate64  FrameRate = 0x01
	FrameRate128 FrameRate = 0x02
	FrameRate256 FrameRate = 0x03
)

// ScrollHorizontal starts horizontal scrolling on the display.
// startPage and endPage specify the scroll region (inclusive).
// If right is true, scrolls right; otherwise scrolls left.
func (d *Dev) ScrollHorizontal(startPage, endPage int, rate FrameRate, right bool) error {
	if d.halted {
		return errHalted
	}

	pages := d.ram.Pages()
	if startPage < 0 || endPage >= pages || startPage > endPage {
		return errors.New("ssd1309: scroll page out of range")
	}

	// Select scroll direction command
	scrollCmd := byte(cmdLeftScroll)
	if right {
		scrollCmd = cmdRightScroll
	}

	return d.b.command(
		scrollCmd,
		0x00,            // Dummy byte
		byte(startPage), // Start page
		byte(rate),      // Step interval
		byte(endPage),   // End page
		0x00,            // Dummy byte
		0xFF,            // Dummy byte
		cmdActivateScroll,
	)
}

// StopScroll stops all scrolling. The memory content is rewritten after
// scrolling is stopped, see the datasheet section 10.2.1.
func (d *Dev) StopScroll() error {
	if d.halted {
		return errHalted
	}
	if err := d.b.command(cmdDeactivateScroll); err != nil {
		return err
	}
	return d.flush(d.ram.Image().Pix, true)
}

var _ display.Drawer = &Dev{}
