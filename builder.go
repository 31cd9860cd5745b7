package sh1106

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"
)

// DisplaySize is a supported panel geometry. The SH1106 drives up to 132x64;
// narrower panels are centered on the 132-column RAM, so each size carries a
// fixed column offset.
type DisplaySize int

// Supported panel geometries.
const (
	Size128x64 DisplaySize = iota // the common 1.3" module, the default
	Size132x64                    // full RAM width
	Size128x40
	Size72x40
	Size64x48
)

// Dimensions returns the panel width and height in pixels.
func (s DisplaySize) Dimensions() (w, h int) {
	switch s {
	case Size132x64:
		return 132, 64
	case Size128x40:
		return 128, 40
	case Size72x40:
		return 72, 40
	case Size64x48:
		return 64, 48
	default:
		return 128, 64
	}
}

// columnOffset is the RAM column of the panel's leftmost pixel.
func (s DisplaySize) columnOffset() int {
	w, _ := s.Dimensions()
	return (132 - w) / 2
}

func (s DisplaySize) String() string {
	w, h := s.Dimensions()
	return fmt.Sprintf("%dx%d", w, h)
}

// Builder binds a panel geometry and a transport into a driver handle. It is
// an immutable value: WithSize returns a new Builder, so builders can be
// copied and specialized freely.
//
//	dev := sh1106.NewBuilder().WithSize(sh1106.Size72x40).ConnectI2C(bus, sh1106.DefaultAddr)
type Builder struct {
	size DisplaySize
}

// NewBuilder returns a builder for the default 128x64 geometry.
func NewBuilder() Builder {
	return Builder{size: Size128x64}
}

// WithSize returns a builder for the given geometry. The receiver is left
// untouched and the previous size is replaced, not composed.
func (b Builder) WithSize(size DisplaySize) Builder {
	return Builder{size: size}
}

// ConnectI2C binds the builder to a two-wire bus and returns the driver
// handle. No bus traffic happens here; if addr is 0, DefaultAddr is used.
// The first controller I/O is Dev.Init.
func (b Builder) ConnectI2C(bus i2c.Bus, addr uint16) *Dev {
	if addr == 0 {
		addr = DefaultAddr
	}
	return newDev(NewI2CInterface(bus, addr), b.size)
}

// ConnectSPI binds the builder to a 4-wire serial bus with dc as the
// data/command select line and returns the driver handle. The only failure
// path is establishing the SPI connection itself; the controller is not
// touched until Dev.Init.
func (b Builder) ConnectSPI(p spi.Port, dc gpio.PinOut) (*Dev, error) {
	iface, err := NewSPIInterface(p, dc)
	if err != nil {
		return nil, err
	}
	return newDev(iface, b.size), nil
}
