// Package sh1106 controls a monochrome OLED display via a SH1106 controller,
// over either I2C or 4-wire SPI.
//
// See the examples for how to use this package.
package sh1106

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/sh1106/image1bit"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"
)

// ramWidth is the GDDRAM width in columns; panels narrower than this are
// centered, see DisplaySize.columnOffset.
const ramWidth = 132

// ramPages is the GDDRAM height in 8-row pages.
const ramPages = 8

// Dev is the device handle for a SH1106 display.
//
// It owns the pixel framebuffer and flushes changed regions through the bound
// transport using the command set in this package.
type Dev struct {
	// Communication
	iface Interface

	// Display geometry
	rect         image.Rectangle
	columnOffset int // RAM column of the leftmost panel pixel

	// Pixel buffers; one byte covers 8 vertically stacked pixels.
	buffer []byte                 // Last flushed frame
	next   *image1bit.VerticalLSB // For lazy double buffering

	// State
	halted bool
}

// NewI2C creates a device on a two-wire bus and runs the controller's
// initialization sequence. addr is typically DefaultAddr (pass 0 for it).
func NewI2C(bus i2c.Bus, addr uint16, size DisplaySize) (*Dev, error) {
	d := NewBuilder().WithSize(size).ConnectI2C(bus, addr)
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewSPI creates a device on a 4-wire serial bus and runs the controller's
// initialization sequence. dc is the data/command select pin.
func NewSPI(p spi.Port, dc gpio.PinOut, size DisplaySize) (*Dev, error) {
	d, err := NewBuilder().WithSize(size).ConnectSPI(p, dc)
	if err != nil {
		return nil, err
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// newDev binds a transport and a geometry. It performs no I/O.
func newDev(iface Interface, size DisplaySize) *Dev {
	w, h := size.Dimensions()
	return &Dev{
		iface:        iface,
		rect:         image.Rect(0, 0, w, h),
		columnOffset: size.columnOffset(),
		buffer:       make([]byte, w*h/8),
	}
}

// busIO is one execution shape over the transport: either the blocking or
// the suspending sends. Every code path below is written once against busIO
// so the two shapes cannot drift apart.
type busIO struct {
	command func(Command) error
	data    func([]byte) error
}

func (d *Dev) blockingIO() busIO {
	return busIO{
		command: func(c Command) error { return Send(c, d.iface) },
		data:    d.iface.SendData,
	}
}

func (d *Dev) contextIO(ctx context.Context) busIO {
	return busIO{
		command: func(c Command) error { return SendContext(ctx, c, d.iface) },
		data:    func(p []byte) error { return d.iface.SendDataContext(ctx, p) },
	}
}

// Init sends the controller initialization sequence and clears the RAM.
// A transport error during Init should be treated as fatal.
func (d *Dev) Init() error {
	return d.init(d.blockingIO())
}

// InitContext is the suspending shape of Init.
func (d *Dev) InitContext(ctx context.Context) error {
	return d.init(d.contextIO(ctx))
}

func (d *Dev) init(io busIO) error {
	h := d.rect.Dy()
	seq := []Command{
		DisplayOn(false),
		DisplayClockDiv{Osc: 0x8, Div: 0},
		Multiplex(uint8(h - 1)),
		DisplayOffset(0),
		StartLine(0),
		ChargePump(true),
		SetPumpVoltage(Pump8V0),
		SegmentRemap(true),
		ReverseComDir(true),
		// 64-row panels use the alternative COM wiring.
		ComPinConfig(h == 64),
		Contrast(0x80),
		PreChargePeriod{Phase1: 0x1, Phase2: 0xF},
		VcomhDeselect(DefaultVcomh),
		AllOn(false),
		Invert(false),
	}
	for _, c := range seq {
		if err := io.command(c); err != nil {
			return err
		}
	}
	if err := d.clearRAM(io); err != nil {
		return err
	}
	if err := io.command(DisplayOn(true)); err != nil {
		return err
	}
	d.halted = false
	return nil
}

// clearRAM zeroes the full 132x64 GDDRAM, including columns and pages the
// panel does not show, so power-on noise never bleeds in after remapping.
func (d *Dev) clearRAM(io busIO) error {
	zeros := make([]byte, ramWidth)
	for page := Page0; page < ramPages; page++ {
		if err := d.writePage(io, page, 0, zeros); err != nil {
			return err
		}
	}
	return nil
}

// writePage writes one run of bytes into a page starting at a RAM column,
// bracketed in a read-modify-write session so the column pointer is restored
// afterwards.
func (d *Dev) writePage(io busIO, page Page, ramCol int, data []byte) error {
	if err := io.command(PageStart(page)); err != nil {
		return err
	}
	if err := io.command(ColStart(uint8(ramCol))); err != nil {
		return err
	}
	if err := io.command(ReadModifyWriteStart{}); err != nil {
		return err
	}
	if err := io.data(data); err != nil {
		return err
	}
	return io.command(ReadModifyWriteEnd{})
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
//
// It draws synchronously; once this function returns, the display is updated.
// Only the smallest changed region is transmitted.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	return d.draw(d.blockingIO(), r, src, sp)
}

// DrawContext is the suspending shape of Draw: it produces the identical
// byte stream but yields while transfers are outstanding.
func (d *Dev) DrawContext(ctx context.Context, r image.Rectangle, src image.Image, sp image.Point) error {
	return d.draw(d.contextIO(ctx), r, src, sp)
}

func (d *Dev) draw(io busIO, r image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("sh1106: halted")
	}
	var next []byte
	if img, ok := src.(*image1bit.VerticalLSB); ok && r == d.rect && img.Rect == d.rect && sp == (image.Point{}) {
		// Exact size, full frame, native encoding: fast path!
		next = img.Pix
	} else {
		// Double buffering.
		if d.next == nil {
			d.next = image1bit.NewVerticalLSB(d.rect)
		}
		next = d.next.Pix
		draw.Src.Draw(d.next, r, src, sp)
	}
	return d.flush(io, next)
}

// Write writes a buffer of pixels to the display.
//
// The format is unusual as each byte represents 8 vertical pixels at a time,
// in horizontal bands of 8 pixels high. This function accepts the content of
// image1bit.VerticalLSB.Pix.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("sh1106: halted")
	}
	if len(pixels) != len(d.buffer) {
		return 0, fmt.Errorf("sh1106: invalid pixel stream length; expected %d bytes, got %d bytes", len(d.buffer), len(pixels))
	}
	// Write() skips d.next so it saves a frame of RAM.
	if err := d.flush(d.blockingIO(), pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// flush sends the changed region of next to the controller, page by page.
func (d *Dev) flush(io busIO, next []byte) error {
	startPage, endPage, startCol, endCol, skip := d.diff(next)
	if skip {
		return nil
	}

	w := d.rect.Dx()
	for page := startPage; page < endPage; page++ {
		off := page * w
		err := d.writePage(io, Page(page), startCol+d.columnOffset, next[off+startCol:off+endCol])
		if err != nil {
			return err
		}
		// Only mark a page as displayed once the bus confirmed it, so a
		// failed flush stays dirty and a retry reaches the panel.
		copy(d.buffer[off+startCol:off+endCol], next[off+startCol:off+endCol])
	}
	return nil
}

// diff returns the smallest page band and column span that differ between
// the stored frame and next, or skip when the frames are identical.
func (d *Dev) diff(next []byte) (startPage, endPage, startCol, endCol int, skip bool) {
	w := d.rect.Dx()
	endPage = d.rect.Dy() / 8
	endCol = w

	// Top.
	for ; startPage < endPage; startPage++ {
		x := w * startPage
		y := w * (startPage + 1)
		if !bytes.Equal(d.buffer[x:y], next[x:y]) {
			break
		}
	}
	// Bottom.
	for ; endPage > startPage; endPage-- {
		x := w * (endPage - 1)
		y := w * endPage
		if !bytes.Equal(d.buffer[x:y], next[x:y]) {
			break
		}
	}
	if startPage == endPage {
		// The frames are identical.
		return 0, 0, 0, 0, true
	}
	// Left.
left:
	for ; startCol < endCol; startCol++ {
		for p := startPage; p < endPage; p++ {
			if d.buffer[p*w+startCol] != next[p*w+startCol] {
				break left
			}
		}
	}
	// Right.
right:
	for ; endCol > startCol; endCol-- {
		for p := startPage; p < endPage; p++ {
			if d.buffer[p*w+endCol-1] != next[p*w+endCol-1] {
				break right
			}
		}
	}
	return startPage, endPage, startCol, endCol, false
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(level byte) error {
	if d.halted {
		return errors.New("sh1106: halted")
	}
	return Send(Contrast(level), d.iface)
}

// SetDisplayStartLine scrolls the panel to start from the given RAM line,
// 0-63. Values out of range are masked by the controller.
func (d *Dev) SetDisplayStartLine(line byte) error {
	if d.halted {
		return errors.New("sh1106: halted")
	}
	return Send(StartLine(line), d.iface)
}

// Invert the display (black on white vs white on black).
func (d *Dev) Invert(blackOnWhite bool) error {
	if d.halted {
		return errors.New("sh1106: halted")
	}
	return Send(Invert(blackOnWhite), d.iface)
}

// SetAllOn forces every pixel lit regardless of RAM content when on is true.
// RAM content is preserved and shown again once turned off.
func (d *Dev) SetAllOn(on bool) error {
	if d.halted {
		return errors.New("sh1106: halted")
	}
	return Send(AllOn(on), d.iface)
}

// Halt powers off the panel. After calling Halt, the device rejects further
// operations until re-initialized with Init.
func (d *Dev) Halt() error {
	if err := Send(DisplayOn(false), d.iface); err != nil {
		return err
	}
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("sh1106.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var _ display.Drawer = &Dev{}
