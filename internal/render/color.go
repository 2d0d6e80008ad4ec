package render

// Color is a linear RGB value with channels in 0..1.
type Color struct{ R, G, B float32 }

var (
	Off    = Color{}
	White  = Color{1, 1, 1}
	Yellow = Color{0.8, 0.7, 0}
	Blue   = Color{0, 0, 0.86}
	Green  = Color{0, 0.8, 0}
	Red    = Color{0.35, 0, 0}
)

// Scale multiplies every channel by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Sum is R+G+B, the quantity the power limiter works with.
func (c Color) Sum() float32 { return c.R + c.G + c.B }

// RGB8 quantizes c to 8-bit channels.
func (c Color) RGB8() (r, g, b byte) {
	return clamp255(c.R), clamp255(c.G), clamp255(c.B)
}

func clamp255(x float32) byte {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return byte(x*255.0 + 0.5)
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
