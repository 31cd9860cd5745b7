package sh1106

import "context"

// Command is a single SH1106 controller operation. The set of operations is
// closed: every implementation lives in this package and maps to the exact
// byte pattern listed in the SH1106 command table (datasheet pages 19-26).
type Command interface {
	// appendTo appends the encoded command bytes to buf.
	appendTo(buf []byte) []byte
}

// Encode returns the raw bytes for a command.
//
// Encoding is pure and total: out-of-range payloads are masked to their
// register field width, matching the controller's own truncation behavior,
// never rejected.
func Encode(c Command) []byte {
	return c.appendTo(make([]byte, 0, 2))
}

// Sink accepts one framed sequence of command bytes and reports success or
// the underlying bus failure. It is implemented by I2CInterface and
// SPIInterface.
type Sink interface {
	SendCommands(cmds []byte) error
}

// ContextSink is the suspending variant of Sink. The transfer is handed to
// the bus and the caller resumes when it completes or fails.
type ContextSink interface {
	SendCommandsContext(ctx context.Context, cmds []byte) error
}

// Send encodes c and pushes it through s in a single framed write, blocking
// until the bytes are on the wire or the bus reports an error. The error is
// returned unchanged; no retries happen at this layer.
func Send(c Command, s Sink) error {
	return s.SendCommands(Encode(c))
}

// SendContext is the suspending shape of Send. It shares the encoder with
// Send byte for byte; only the way completion is awaited differs.
func SendContext(ctx context.Context, c Command, s ContextSink) error {
	return s.SendCommandsContext(ctx, Encode(c))
}

func onBit(on bool) byte {
	if on {
		return 1
	}
	return 0
}

// Contrast sets the display contrast (81h). Higher is brighter. The power-on
// reset value is 0x80.
type Contrast uint8

func (c Contrast) appendTo(buf []byte) []byte { return append(buf, 0x81, byte(c)) }

// AllOn (A4h/A5h) forces every pixel on when true; when false the display
// shows RAM content.
type AllOn bool

func (c AllOn) appendTo(buf []byte) []byte { return append(buf, 0xA4|onBit(bool(c))) }

// Invert (A6h/A7h) swaps lit and unlit pixels.
type Invert bool

func (c Invert) appendTo(buf []byte) []byte { return append(buf, 0xA6|onBit(bool(c))) }

// DisplayOn (AEh/AFh) turns the panel on or off.
type DisplayOn bool

func (c DisplayOn) appendTo(buf []byte) []byte { return append(buf, 0xAE|onBit(bool(c))) }

// LowerColStart (00h-0Fh) sets the lower nibble of the column start address.
// Page addressing mode only.
type LowerColStart uint8

func (c LowerColStart) appendTo(buf []byte) []byte { return append(buf, byte(c)&0xF) }

// UpperColStart (10h-1Fh) sets the upper nibble of the column start address.
// Page addressing mode only.
type UpperColStart uint8

func (c UpperColStart) appendTo(buf []byte) []byte { return append(buf, 0x10|(byte(c)&0xF)) }

// ColStart sets the full 8-bit column start address, emitting the lower then
// the upper nibble command.
type ColStart uint8

func (c ColStart) appendTo(buf []byte) []byte {
	return append(buf, byte(c)&0xF, 0x10|((byte(c)>>4)&0xF))
}

// Page is one 8-row horizontal band of the display RAM. Its numeric value is
// the register field value.
type Page uint8

// The eight GDDRAM pages.
const (
	Page0 Page = iota
	Page1
	Page2
	Page3
	Page4
	Page5
	Page6
	Page7
)

// PageOf returns the page covering a row, e.g. row 37 is on Page4.
func PageOf(row int) Page {
	return Page(row/8) & 7
}

// PageStart (B0h-B7h) selects the page subsequent data writes go to.
type PageStart Page

func (c PageStart) appendTo(buf []byte) []byte { return append(buf, 0xB0|(byte(c)&7)) }

// StartLine (40h-7Fh) sets the display start line, 0-63.
type StartLine uint8

func (c StartLine) appendTo(buf []byte) []byte { return append(buf, 0x40|(byte(c)&0x3F)) }

// SegmentRemap (A0h/A1h) reverses the column order when true.
type SegmentRemap bool

func (c SegmentRemap) appendTo(buf []byte) []byte { return append(buf, 0xA0|onBit(bool(c))) }

// Multiplex (A8h) sets the multiplex ratio. The power-on reset value is 64.
type Multiplex uint8

func (c Multiplex) appendTo(buf []byte) []byte { return append(buf, 0xA8, byte(c)) }

// ReverseComDir (C0h/C8h) scans COM pins from COM[N-1] to COM0 when true,
// where N is the multiplex ratio.
type ReverseComDir bool

func (c ReverseComDir) appendTo(buf []byte) []byte {
	return append(buf, 0xC0|(onBit(bool(c))<<3))
}

// DisplayOffset (D3h) shifts the COM output vertically, 0-63.
type DisplayOffset uint8

func (c DisplayOffset) appendTo(buf []byte) []byte { return append(buf, 0xD3, byte(c)) }

// ComPinConfig (DAh) selects sequential (false) or alternative (true) COM pin
// wiring.
type ComPinConfig bool

func (c ComPinConfig) appendTo(buf []byte) []byte {
	return append(buf, 0xDA, 0x02|(onBit(bool(c))<<4))
}

// DisplayClockDiv (D5h) sets the oscillator frequency (high nibble) and the
// divide ratio minus one (low nibble).
type DisplayClockDiv struct {
	Osc uint8
	Div uint8
}

func (c DisplayClockDiv) appendTo(buf []byte) []byte {
	return append(buf, 0xD5, ((c.Osc&0xF)<<4)|(c.Div&0xF))
}

// PreChargePeriod (D9h) sets the pre-charge (Phase1) and discharge (Phase2)
// periods in DCLKs, each 1-15.
//
// Phase2 occupies the high nibble of the argument byte even though it is the
// second field; that matches the register layout and must not be "fixed".
type PreChargePeriod struct {
	Phase1 uint8
	Phase2 uint8
}

func (c PreChargePeriod) appendTo(buf []byte) []byte {
	return append(buf, 0xD9, ((c.Phase2&0xF)<<4)|(c.Phase1&0xF))
}

// VcomhDeselect (DBh) sets the VCOM deselect level.
type VcomhDeselect VcomhLevel

func (c VcomhDeselect) appendTo(buf []byte) []byte {
	return append(buf, 0xDB, byte(c)<<4)
}

// Noop (E3h) does nothing.
type Noop struct{}

func (Noop) appendTo(buf []byte) []byte { return append(buf, 0xE3) }

// ChargePump (ADh 8Ah/8Bh) enables or disables the internal charge pump.
// Must be issued while the display is off.
type ChargePump bool

func (c ChargePump) appendTo(buf []byte) []byte {
	return append(buf, 0xAD, 0x8A|onBit(bool(c)))
}

// SetPumpVoltage (30h-33h) selects the charge pump output voltage.
type SetPumpVoltage PumpVoltage

func (c SetPumpVoltage) appendTo(buf []byte) []byte { return append(buf, 0x30|(byte(c)&3)) }

// ReadModifyWriteStart (E0h) begins a windowed-write session: the column
// address is latched and auto-increments on data writes only, until
// ReadModifyWriteEnd restores it. Start and End must always be paired.
type ReadModifyWriteStart struct{}

func (ReadModifyWriteStart) appendTo(buf []byte) []byte { return append(buf, 0xE0) }

// ReadModifyWriteEnd (EEh) ends a windowed-write session and returns the
// column address to the value latched at the matching start.
type ReadModifyWriteEnd struct{}

func (ReadModifyWriteEnd) appendTo(buf []byte) []byte { return append(buf, 0xEE) }

// PumpVoltage is the charge pump output voltage (VPP).
type PumpVoltage uint8

// Supported pump voltages. Pump8V0 is the power-on default.
const (
	Pump6V4 PumpVoltage = iota // 6.4V
	Pump7V4                    // 7.4V
	Pump8V0                    // 8.0V
	Pump9V0                    // 9.0V
)

// VcomhLevel is the VCOM deselect level as a fraction of VREF, following
// VCOM = (0.430 + level * 0.006415) * VREF. The register transmits the level
// shifted left by four bits.
type VcomhLevel uint8

// VCOM deselect levels. DefaultVcomh (~0.77*VREF) is the power-on default.
const (
	Vcomh0430 VcomhLevel = iota // 0.430 * VREF
	Vcomh0436
	Vcomh0442
	Vcomh0449
	Vcomh0455
	Vcomh0462
	Vcomh0468
	Vcomh0474
	Vcomh0481
	Vcomh0487
	Vcomh0494
	Vcomh0500
	Vcomh0506
	Vcomh0513
	Vcomh0519
	Vcomh0526
	Vcomh0532
	Vcomh0539
	Vcomh0545
	Vcomh0551
	Vcomh0558
	Vcomh0564
	Vcomh0571
	Vcomh0577
	Vcomh0583
	Vcomh0590
	Vcomh0596
	Vcomh0603
	Vcomh0609
	Vcomh0616
	Vcomh0622
	Vcomh0628
	Vcomh0635
	Vcomh0641
	Vcomh0648
	Vcomh0654
	Vcomh0660
	Vcomh0667
	Vcomh0673
	Vcomh0680
	Vcomh0686
	Vcomh0693
	Vcomh0699
	Vcomh0705
	Vcomh0712
	Vcomh0718
	Vcomh0725
	Vcomh0731
	Vcomh0737
	Vcomh0744
	Vcomh0750
	Vcomh0757
	Vcomh0763
	Vcomh0769 // 0.770 * VREF
	Vcomh0776
	Vcomh0782
	Vcomh0789
	Vcomh0795
	Vcomh0802
	Vcomh0808
	Vcomh0814
	Vcomh0821
	Vcomh0827
	Vcomh0834 // 0.834 * VREF
	Vcomh1000 // 1.000 * VREF
)

// DefaultVcomh is the controller's power-on VCOM deselect level.
const DefaultVcomh = Vcomh0769
