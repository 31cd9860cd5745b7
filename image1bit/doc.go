// Package image1bit provides a 1-bit monochrome image format for the SH1106 display controller.
//
// The SH1106 stores pixels vertically packed: each byte in GDDRAM covers 8
// vertically stacked pixels, least significant bit topmost. A full-width run
// of bytes forms one 8-pixel-high band, and bands map one-to-one onto the
// controller's pages.
//
// Memory layout example for an 8-pixel-wide, 16-pixel-high image:
//
//	Byte 0 covers pixels (0,0)..(0,7), bit 0 = (0,0), bit 7 = (0,7)
//	Byte 1 covers pixels (1,0)..(1,7)
//	...
//	Byte 8 covers pixels (0,8)..(0,15)   (second band / page)
//
// This package provides:
//
// - Bit: a binary pixel value (On or Off)
// - BitModel: a color model converting standard Go colors to Bit
// - VerticalLSB: an image.Image implementation in the SH1106's native packing
//
// Example usage:
//
//	// Create a 128x64 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//
//	// Light a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Read it back
//	println(img.BitAt(10, 20) == image1bit.On) // Output: true
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
