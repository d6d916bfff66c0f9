package ssd1309

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// bus transfers command and data streams to the controller.
type bus interface {
	command(c ...byte) error
	data(d []byte) error
	String() string
}

// spiBus is a 4-wire SPI interface, the DC pin selects commands or data.
type spiBus struct {
	c  conn.Conn
	dc gpio.PinOut
}

func (s *spiBus) command(c ...byte) error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return err
	}
	return s.c.Tx(c, nil)
}

func (s *spiBus) data(d []byte) error {
	if err := s.dc.Out(gpio.High); err != nil {
		return err
	}
	return s.c.Tx(d, nil)
}

func (s *spiBus) String() string {
	return fmt.Sprintf("%s, %s", s.c, s.dc)
}

const (
	i2cCmd  = 0x00 // I²C transaction has stream of command bytes
	i2cData = 0x40 // I²C transaction has stream of data bytes
)

// i2cBus prefixes every transaction with a control byte.
type i2cBus struct {
	c conn.Conn
}

func (i *i2cBus) command(c ...byte) error {
	return i.c.Tx(append([]byte{i2cCmd}, c...), nil)
}

func (i *i2cBus) data(d []byte) error {
	return i.c.Tx(append([]byte{i2cData}, d...), nil)
}

func (i *i2cBus) String() string {
	return i.c.String()
}

// ParallelPins are the GPIO lines of an 8080-style 8-bit parallel interface.
// The read strobe (RD) must be tied high.
type ParallelPins struct {
	D  [8]gpio.PinOut // D0 to D7
	CS gpio.PinOut    // Chip select, active low
	DC gpio.PinOut    // Data/Command
	WR gpio.PinOut    // Write strobe, latched on the rising edge
}

// parallelBus bit-bangs bytes over ParallelPins.
type parallelBus struct {
	p ParallelPins
}

func newParallelBus(p ParallelPins) (*parallelBus, error) {
	pins := append(p.D[:], p.CS, p.DC, p.WR)
	for _, pin := range pins {
		if pin == nil || pin == gpio.INVALID {
			return nil, errors.New("ssd1309: every parallel bus pin is required")
		}
	}
	// Idle state: deselected, strobe high.
	if err := p.CS.Out(gpio.High); err != nil {
		return nil, err
	}
	if err := p.WR.Out(gpio.High); err != nil {
		return nil, err
	}
	return &parallelBus{p: p}, nil
}

func (b *parallelBus) command(c ...byte) error {
	return b.write(gpio.Low, c)
}

func (b *parallelBus) data(d []byte) error {
	return b.write(gpio.High, d)
}

// write sends each byte as its own chip select cycle.
func (b *parallelBus) write(dc gpio.Level, bytes []byte) error {
	if err := b.p.DC.Out(dc); err != nil {
		return err
	}
	for _, v := range bytes {
		if err := b.p.CS.Out(gpio.Low); err != nil {
			return err
		}
		if err := b.p.WR.Out(gpio.Low); err != nil {
			return err
		}
		for i, pin := range b.p.D {
			if err := pin.Out(v&(1<<uint(i)) != 0); err != nil {
				return err
			}
		}
		if err := b.p.WR.Out(gpio.High); err != nil {
			return err
		}
		if err := b.p.CS.Out(gpio.High); err != nil {
			return err
		}
	}
	return nil
}

func (b *parallelBus) String() string {
	return fmt.Sprintf("parallel{WR: %s}", b.p.WR)
}
