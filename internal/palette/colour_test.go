package palette

import (
	"image/color"
	"testing"
)

func TestColour_DefaultIsTransparentBlack(t *testing.T) {
	var c Colour
	if c.Raw() != 0x00000000 {
		t.Errorf("Raw: got %#08x, want 0x00000000", c.Raw())
	}
}

func TestColour_RawIsARGB(t *testing.T) {
	c := NewColour(0xdd, 0xaa, 0x55, 0x12)
	if c.Raw() != 0xddaa5512 {
		t.Errorf("Raw: got %#08x, want 0xddaa5512", c.Raw())
	}
}

func TestColour_Components(t *testing.T) {
	c := NewColour(0x22, 0x77, 0x81, 0x18)

	if c.A() != 0x22 || c.R() != 0x77 || c.G() != 0x81 || c.B() != 0x18 {
		t.Errorf("components: got (%#x,%#x,%#x,%#x), want (0x22,0x77,0x81,0x18)",
			c.A(), c.R(), c.G(), c.B())
	}
}

func TestColour_RoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		a, r, g, b uint8
	}{
		{"zero", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"mixed", 0x10, 0x20, 0x30, 0x40},
		{"alpha only", 0xff, 0, 0, 0},
		{"blue only", 0, 0, 0, 0xff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewColour(tt.a, tt.r, tt.g, tt.b)
			want := uint32(tt.a)<<24 | uint32(tt.r)<<16 | uint32(tt.g)<<8 | uint32(tt.b)
			if c.Raw() != want {
				t.Errorf("Raw: got %#08x, want %#08x", c.Raw(), want)
			}
			if FromRaw(c.Raw()) != c {
				t.Errorf("FromRaw(Raw()) did not reproduce %v", c)
			}
		})
	}
}

func TestColour_SettersTouchOneChannel(t *testing.T) {
	c := NewColour(0, 0, 0, 0)

	c.SetA(100)
	if c.A() != 100 || c.Raw() != 100<<24 {
		t.Errorf("SetA: got %v", c)
	}

	c.SetR(219)
	if c.R() != 219 || c.A() != 100 {
		t.Errorf("SetR: got %v", c)
	}

	c.SetG(12)
	if c.G() != 12 || c.R() != 219 || c.A() != 100 {
		t.Errorf("SetG: got %v", c)
	}

	c.SetB(255)
	if c.B() != 255 || c.G() != 12 || c.R() != 219 || c.A() != 100 {
		t.Errorf("SetB: got %v", c)
	}

	c.SetR(0)
	if c.Raw() != 0x64000cff {
		t.Errorf("SetR(0): got %#08x, want 0x64000cff", c.Raw())
	}
}

func TestColour_SetRaw(t *testing.T) {
	c := NewColour(255, 255, 255, 255)
	if c.Raw() != 0xffffffff {
		t.Fatalf("Raw: got %#08x, want 0xffffffff", c.Raw())
	}

	c.SetRaw(0xabcdef12)
	if c.Raw() != 0xabcdef12 {
		t.Errorf("Raw after SetRaw: got %#08x, want 0xabcdef12", c.Raw())
	}
}

func TestColour_HSLPrimaries(t *testing.T) {
	tests := []struct {
		name    string
		c       Colour
		h, s, l float64
	}{
		{"red", NewColour(0, 255, 0, 0), 0, 1, 0.5},
		{"green", NewColour(0, 0, 255, 0), 120, 1, 0.5},
		{"blue", NewColour(0, 0, 0, 255), 240, 1, 0.5},
		{"black", NewColour(255, 0, 0, 0), 0, 0, 0},
		{"white", NewColour(255, 255, 255, 255), 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hsl := tt.c.HSL()
			if hsl.H != tt.h || hsl.S != tt.s || hsl.L != tt.l {
				t.Errorf("HSL: got %+v, want {H:%v S:%v L:%v}", hsl, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestColour_HSLApproximate(t *testing.T) {
	tests := []struct {
		name     string
		c        Colour
		hLo, hHi float64
		sLo, sHi float64
		lLo, lHi float64
	}{
		{"somewhat orange", NewColour(0, 200, 105, 20), 27, 29, 0.81, 0.82, 0.43, 0.44},
		{"other blue", NewColour(0, 10, 10, 200), 239, 241, 0.90, 0.91, 0.41, 0.42},
		{"weird white", NewColour(0, 240, 233, 198), 49, 51, 0.58, 0.59, 0.85, 0.86},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hsl := tt.c.HSL()
			if hsl.H < tt.hLo || hsl.H > tt.hHi {
				t.Errorf("H: got %f, want [%f,%f]", hsl.H, tt.hLo, tt.hHi)
			}
			if hsl.S < tt.sLo || hsl.S > tt.sHi {
				t.Errorf("S: got %f, want [%f,%f]", hsl.S, tt.sLo, tt.sHi)
			}
			if hsl.L < tt.lLo || hsl.L > tt.lHi {
				t.Errorf("L: got %f, want [%f,%f]", hsl.L, tt.lLo, tt.lHi)
			}
		})
	}
}

func TestColour_GreyscaleHasNoSaturation(t *testing.T) {
	for v := 0; v <= 255; v += 15 {
		c := NewColour(255, uint8(v), uint8(v), uint8(v))
		if s := c.HSL().S; s != 0 {
			t.Errorf("grey %d: saturation got %f, want 0", v, s)
		}
	}
}

func TestColour_HueInRange(t *testing.T) {
	// Magenta-ish colours sit just below 360 degrees.
	for b := 1; b < 255; b += 7 {
		h := NewColour(255, 255, 0, uint8(b)).HSL().H
		if h < 0 || h >= 360 {
			t.Errorf("b=%d: hue %f outside [0,360)", b, h)
		}
	}
}

func TestColour_Hex(t *testing.T) {
	c := NewColour(0x80, 0xff, 0x80, 0x40)
	if c.Hex() != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", c.Hex())
	}
	if c.String() != "#80FF8040" {
		t.Errorf("String: got %s, want #80FF8040", c.String())
	}
}

func TestFromHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    uint32
	}{
		{"red", 0, 1, 0.5, 0xffff0000},
		{"green", 120, 1, 0.5, 0xff00ff00},
		{"blue", 240, 1, 0.5, 0xff0000ff},
		{"black", 0, 0, 0, 0xff000000},
		{"white", 0, 0, 1, 0xffffffff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromHSL(tt.h, tt.s, tt.l).Raw(); got != tt.want {
				t.Errorf("FromHSL: got %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestColour_ImplementsColor(t *testing.T) {
	var c color.Color = NewColour(255, 255, 0, 0)
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA: got (%#x,%#x,%#x,%#x), want (0xffff,0,0,0xffff)", r, g, b, a)
	}

	conv := ColourModel.Convert(color.NRGBA{R: 1, G: 2, B: 3, A: 4}).(Colour)
	if conv.Raw() != 0x04010203 {
		t.Errorf("ColourModel: got %#08x, want 0x04010203", conv.Raw())
	}
}
