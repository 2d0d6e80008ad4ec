package render

import (
	"errors"
	"fmt"
)

var ErrPixelRange = errors.New("pixel index out of range")

// Canvas is the frame buffer for a fixed number of LEDs. Encode turns it
// into wire bytes after brightness and limiting; the buffer itself keeps the
// unscaled colors.
type Canvas struct {
	px         []Color
	out        []Color
	Brightness float32 // 0..1, 0 means full
	Limits     Limits
}

func NewCanvas(n int) *Canvas {
	return &Canvas{px: make([]Color, n), out: make([]Color, n)}
}

func (c *Canvas) Len() int { return len(c.px) }

func (c *Canvas) Set(i int, col Color) error {
	if i < 0 || i >= len(c.px) {
		return fmt.Errorf("%w: %d of %d", ErrPixelRange, i, len(c.px))
	}
	c.px[i] = col
	return nil
}

func (c *Canvas) At(i int) Color {
	if i < 0 || i >= len(c.px) {
		return Off
	}
	return c.px[i]
}

func (c *Canvas) Fill(col Color) {
	for i := range c.px {
		c.px[i] = col
	}
}

func (c *Canvas) Clear() { c.Fill(Off) }

// Encode writes the frame as packed 8-bit RGB into dst (len 3*Len) and
// returns it, allocating when dst is too short.
func (c *Canvas) Encode(dst []byte) []byte {
	n := len(c.px)
	if len(dst) < n*3 {
		dst = make([]byte, n*3)
	}
	b := clamp01(c.Brightness)
	if b == 0 {
		b = 1
	}
	for i, p := range c.px {
		c.out[i] = Color{clamp01(p.R), clamp01(p.G), clamp01(p.B)}.Scale(b)
	}
	c.Limits.Apply(c.out)
	for i, p := range c.out {
		dst[i*3+0], dst[i*3+1], dst[i*3+2] = p.RGB8()
	}
	return dst[:n*3]
}
