package sh1106

import (
	"context"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DefaultAddr is the most common I2C address for SH1106 boards. Some boards
// strap the SA0 pin high and answer on 0x3D instead.
const DefaultAddr uint16 = 0x3C

// Interface is a bound display transport: it frames bytes as either command
// or display data and pushes them over the underlying bus, in blocking or
// suspending shape. A given Interface is owned by exactly one driver handle
// and must not be shared between goroutines.
type Interface interface {
	Sink
	ContextSink
	// SendData writes display (pixel) data bytes.
	SendData(data []byte) error
	// SendDataContext is the suspending shape of SendData.
	SendDataContext(ctx context.Context, data []byte) error
}

// txContext runs one bus transfer while honoring ctx. A transfer that is
// already on the wire is never abandoned: on ctx expiry the frame still
// completes, only the reported outcome changes. An expired ctx before the
// transfer starts skips the bus entirely.
func txContext(ctx context.Context, tx func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() { done <- tx() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		<-done
		return ctx.Err()
	}
}

// I2CInterface frames command and data bytes for the two-wire bus.
//
// Every transaction starts with a control byte: 0x00 announces a command
// stream, 0x40 a display data stream. The framed payload is written in a
// single bus transaction.
type I2CInterface struct {
	c conn.Conn
}

// NewI2CInterface binds an I2C bus and device address into a command/data
// transport. It performs no bus traffic; use DefaultAddr unless the board's
// SA0 strap says otherwise.
func NewI2CInterface(bus i2c.Bus, addr uint16) *I2CInterface {
	return &I2CInterface{c: &i2c.Dev{Bus: bus, Addr: addr}}
}

const (
	i2cCmd  = 0x00 // control byte announcing a command stream
	i2cData = 0x40 // control byte announcing a display data stream
)

// SendCommands implements Sink.
func (i *I2CInterface) SendCommands(cmds []byte) error {
	return i.c.Tx(append([]byte{i2cCmd}, cmds...), nil)
}

// SendData writes display data bytes.
func (i *I2CInterface) SendData(data []byte) error {
	return i.c.Tx(append([]byte{i2cData}, data...), nil)
}

// SendCommandsContext implements ContextSink.
func (i *I2CInterface) SendCommandsContext(ctx context.Context, cmds []byte) error {
	return txContext(ctx, func() error { return i.SendCommands(cmds) })
}

// SendDataContext is the suspending shape of SendData.
func (i *I2CInterface) SendDataContext(ctx context.Context, data []byte) error {
	return txContext(ctx, func() error { return i.SendData(data) })
}

func (i *I2CInterface) String() string {
	return "sh1106.I2CInterface{" + i.c.String() + "}"
}

// SPIInterface frames command and data bytes for the 4-wire serial bus.
//
// The dc select line is driven Low before command bytes and High before
// display data bytes, then the payload goes out in one transfer.
type SPIInterface struct {
	c  conn.Conn
	dc gpio.PinOut
}

// NewSPIInterface connects to the display over SPI at 3.3MHz, Mode0, 8 bits
// per word, the fastest clocking the SH1106 is specified for. dc is the
// data/command select pin and is required; 3-wire mode is not supported.
func NewSPIInterface(p spi.Port, dc gpio.PinOut) (*SPIInterface, error) {
	if err := dc.Out(gpio.Low); err != nil {
		return nil, err
	}
	c, err := p.Connect(3300*physic.KiloHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return &SPIInterface{c: c, dc: dc}, nil
}

// SendCommands implements Sink.
func (s *SPIInterface) SendCommands(cmds []byte) error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return err
	}
	return s.c.Tx(cmds, nil)
}

// SendData writes display data bytes.
func (s *SPIInterface) SendData(data []byte) error {
	if err := s.dc.Out(gpio.High); err != nil {
		return err
	}
	return s.c.Tx(data, nil)
}

// SendCommandsContext implements ContextSink.
func (s *SPIInterface) SendCommandsContext(ctx context.Context, cmds []byte) error {
	return txContext(ctx, func() error { return s.SendCommands(cmds) })
}

// SendDataContext is the suspending shape of SendData.
func (s *SPIInterface) SendDataContext(ctx context.Context, data []byte) error {
	return txContext(ctx, func() error { return s.SendData(data) })
}

func (s *SPIInterface) String() string {
	return "sh1106.SPIInterface{" + s.c.String() + ", " + s.dc.String() + "}"
}

var (
	_ Interface = &I2CInterface{}
	_ Interface = &SPIInterface{}
)
