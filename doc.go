// Package ssd1309 controls a SSD1309 monochrome OLED display via SPI, I²C or
// an 8080-style parallel bus.
//
// The SSD1309 drives up to 128×64 pixels. Its display RAM is organized in
// pages of 8 pixel rows, each byte holding one column of a page with the least
// significant bit on top. This driver runs the controller in page addressing
// mode and implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 1-bit monochrome, 8 to 128 columns and 16 to 64 rows
// - Byte level access through SetCursor and WriteByte
// - Bargraph, text (5×7 Latin-1) and big digit (13×16) rendering
// - Hardware scrolling support (horizontal only)
// - Adjustable contrast (0-255), inversion and entire display on
//
// # Hardware Connection
//
// Connect the SSD1309 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// For I²C, tie DC to GND for address 0x3C or to VCC for 0x3D and set
// Opts.Addr accordingly.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/flavioheleno/ssd1309"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get Data/Command GPIO pin
//		dcPin := gpioreg.ByName("GPIO25")
//
//		// Create device
//		dev, _ := ssd1309.NewSPI(spiBus, dcPin, nil)
//		defer dev.Halt()
//
//		// A bar filled to 75% over pages 0 to 1, 120 columns wide
//		dev.DrawBargraph(75, 0, 1, 4, 120)
//
//		// Text below it
//		dev.Printf(3, 4, "CPU %d%%", 75)
//		dev.PrintBigDigits("12:30", 5, 4)
//	}
//
// # Using Hardware Reset Pin (Optional)
//
// If your display has a reset (RST) pin connected to a GPIO, you can provide it
// in the Opts struct:
//
//	dev, _ := ssd1309.NewSPI(spiBus, dcPin, &ssd1309.Opts{
//		W:   128,
//		H:   64,
//		RST: gpioreg.ByName("GPIO24"),
//	})
//
// The driver pulls RST low for 10ms and releases it 1ms before sending the
// initialization sequence.
//
// # Drawing Modes
//
// Renderers such as DrawBargraph and Print write column bytes through the
// cursor and only touch their own region.
//
// Write sends a full frame in image1bit.VerticalLSB layout:
//
//	pixels := make([]byte, 128*64/8)
//	dev.Write(pixels)
//
// Draw composes an image over the current display content and sends the
// changed column span of every modified page:
//
//	dev.Draw(dev.Bounds(), myImage, image.Point{})
//
// # Hardware Scrolling
//
//	dev.ScrollHorizontal(0, 7, ssd1309.FrameRate5, false)
//	time.Sleep(5 * time.Second)
//	dev.StopScroll()
//
// # Datasheet
//
// https://www.hpinfotech.ro/SSD1309.pdf
package ssd1309
