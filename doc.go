// Package sh1106 controls a monochrome OLED display via a SH1106 controller.
//
// The SH1106 drives up to 132×64 pixels of 1-bit GDDRAM, addressed as eight
// 8-row pages. This driver implements the display.Drawer interface from
// periph.io and works over both supported buses through one code path.
//
// # Display Characteristics
//
// - 1-bit monochrome, vertically packed pages (8 rows per page)
// - 132-column RAM; narrower panels are centered automatically
// - Adjustable contrast (0-255), display inversion, all-pixels-on test mode
// - On-chip charge pump with selectable output voltage (6.4V-9V)
// - Write-only device: drivable over I²C or 4-wire SPI
//
// # Hardware Connection
//
// Over I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C clock (SCL)
//	SDA         → I²C data (SDA)
//
// Over 4-wire SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//
//		"github.com/flavioheleno/sh1106"
//		"github.com/flavioheleno/sh1106/image1bit"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		bus, _ := i2creg.Open("")
//
//		// Create device (builder + init)
//		dev, _ := sh1106.NewI2C(bus, sh1106.DefaultAddr, sh1106.Size128x64)
//		defer dev.Halt()
//
//		// Draw a diagonal line
//		img := image1bit.NewVerticalLSB(dev.Bounds())
//		for i := 0; i < 64; i++ {
//			img.SetBit(i, i, image1bit.On)
//		}
//		dev.Draw(dev.Bounds(), img, image.Point{})
//	}
//
// # Builder
//
// Construction and initialization are split: the immutable Builder binds a
// geometry and a transport without any bus traffic, and Init performs the
// first controller I/O. This keeps construction infallible on I²C and lets
// callers decide how to handle initialization failures:
//
//	dev := sh1106.NewBuilder().WithSize(sh1106.Size72x40).ConnectI2C(bus, 0)
//	if err := dev.Init(); err != nil {
//		// wiring or bus fault; nothing was partially configured
//	}
//
// # Command Protocol
//
// Every controller operation is a typed Command value with a bit-exact
// encoding, usable directly against either bus interface:
//
//	iface := sh1106.NewI2CInterface(bus, sh1106.DefaultAddr)
//	sh1106.Send(sh1106.Contrast(0xCF), iface)
//
// Send blocks until the bytes are transmitted. SendContext is the suspending
// shape of the same dispatch: it hands the frame to the bus and resumes when
// the transfer completes, producing byte-identical output.
//
// # Differential Updates
//
// Draw computes the smallest page band and column span that changed and
// transmits only that region, bracketing each page write in a
// read-modify-write session so the controller's column pointer is restored.
// On a 100kHz I²C bus this is the difference between ~10 frames per second
// and smooth partial updates.
//
// Write transfers a raw full frame in the native vertically packed format
// and skips the conversion buffer entirely.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SH1106.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a
// display.Drawer.
package sh1106
