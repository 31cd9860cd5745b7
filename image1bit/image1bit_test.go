package image1bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestBitRGBA(t *testing.T) {
	r, g, b, a := On.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("On.RGBA() = (%x, %x, %x, %x), want full white", r, g, b, a)
	}
	r, g, b, a = Off.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("Off.RGBA() = (%x, %x, %x, %x), want opaque black", r, g, b, a)
	}
}

func TestBitString(t *testing.T) {
	if On.String() != "On" || Off.String() != "Off" {
		t.Errorf("String() = %q/%q, want On/Off", On.String(), Off.String())
	}
}

func TestBitModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Bit
	}{
		{"bit passthrough on", On, On},
		{"bit passthrough off", Off, Off},
		{"black", color.Black, Off},
		{"white", color.White, On},
		{"dark gray", color.RGBA{0x40, 0x40, 0x40, 0xFF}, Off},
		{"light gray", color.RGBA{0xC0, 0xC0, 0xC0, 0xFF}, On},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BitModel.Convert(tt.input).(Bit); got != tt.want {
				t.Errorf("BitModel.Convert(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewVerticalLSB(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantPanic  bool
		wantStride int
		wantPixLen int
	}{
		{"128x64", image.Rect(0, 0, 128, 64), false, 128, 1024},
		{"72x40", image.Rect(0, 0, 72, 40), false, 72, 360},
		{"8x8", image.Rect(0, 0, 8, 8), false, 8, 8},
		{"offset rect", image.Rect(10, 16, 18, 32), false, 8, 16},
		{"partial band panics", image.Rect(0, 0, 8, 12), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r != nil, tt.wantPanic)
				}
			}()
			img := NewVerticalLSB(tt.rect)
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
			if img.Bounds() != tt.rect {
				t.Errorf("Bounds() = %v, want %v", img.Bounds(), tt.rect)
			}
		})
	}
}

func TestVerticalLSBLayout(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 16))

	// (0,0) is bit 0 of byte 0.
	img.SetBit(0, 0, On)
	if img.Pix[0] != 0x01 {
		t.Errorf("Pix[0] = %#02x, want 0x01", img.Pix[0])
	}
	// (0,7) is bit 7 of the same byte.
	img.SetBit(0, 7, On)
	if img.Pix[0] != 0x81 {
		t.Errorf("Pix[0] = %#02x, want 0x81", img.Pix[0])
	}
	// (3,10) is bit 2 of byte 3 in the second band.
	img.SetBit(3, 10, On)
	if img.Pix[1*8+3] != 0x04 {
		t.Errorf("Pix[11] = %#02x, want 0x04", img.Pix[11])
	}
	// Clearing restores the byte.
	img.SetBit(0, 7, Off)
	if img.Pix[0] != 0x01 {
		t.Errorf("Pix[0] after clear = %#02x, want 0x01", img.Pix[0])
	}
}

func TestVerticalLSBRoundTrip(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := Bit((x+y)%3 == 0)
			img.SetBit(x, y, want)
			if got := img.BitAt(x, y); got != want {
				t.Fatalf("BitAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestVerticalLSBOutOfBounds(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	if img.BitAt(-1, 0) != Off || img.BitAt(0, 8) != Off {
		t.Error("out-of-bounds reads should return Off")
	}
	// Out-of-bounds writes are a no-op.
	img.SetBit(8, 0, On)
	img.SetBit(0, -1, On)
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("out-of-bounds write modified pixel data")
		}
	}
}

func TestVerticalLSBOffsetRect(t *testing.T) {
	img := NewVerticalLSB(image.Rect(4, 8, 12, 16))
	img.SetBit(4, 8, On)
	if img.Pix[0] != 0x01 {
		t.Errorf("Pix[0] = %#02x, want 0x01", img.Pix[0])
	}
	if got := img.BitAt(4, 8); got != On {
		t.Errorf("BitAt(4, 8) = %v, want On", got)
	}
}

func TestVerticalLSBWithDraw(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	draw.Draw(img, img.Bounds(), image.NewUniform(On), image.Point{}, draw.Src)
	for i, b := range img.Pix {
		if b != 0xFF {
			t.Fatalf("Pix[%d] = %#02x, want 0xFF", i, b)
		}
	}
	if img.ColorModel() != BitModel {
		t.Error("ColorModel() did not return BitModel")
	}
}
