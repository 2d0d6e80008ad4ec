package matrix

import (
	"context"
	"time"

	"github.com/coreman2200/funtimes-genius/internal/render"
)

type TestKind string

const (
	IndexSweep TestKind = "index_sweep"
	RGBTest    TestKind = "rgb_channels"
	RowSweep   TestKind = "row_sweep"
	GlyphTest  TestKind = "glyphs"
)

// AllTests is the order genius -selftest runs in.
var AllTests = []TestKind{IndexSweep, RowSweep, RGBTest, GlyphTest}

var testGlyphs = []struct {
	g Glyph
	c render.Color
}{
	{ArrowA, render.Yellow},
	{ArrowB, render.Blue},
	{Check, render.Green},
	{Cross, render.Red},
}

// Runner steps a matrix through one wiring test pattern.
type Runner struct {
	kind TestKind
	step int
}

func NewRunner(kind TestKind) *Runner { return &Runner{kind: kind} }

func (r *Runner) Kind() TestKind { return r.kind }

// Step fills the next frame; returns false when complete.
func (r *Runner) Step(m *Matrix) bool {
	m.Clear()
	l := m.Layout()
	switch r.kind {
	case IndexSweep:
		if r.step >= m.Count() {
			return false
		}
		_ = m.SetPixel(r.step, render.White)
	case RowSweep:
		if r.step >= l.Height {
			return false
		}
		for x := 0; x < l.Width; x++ {
			_ = m.Set(x, r.step, render.Color{G: 1, B: 1}) // cyan
		}
	case RGBTest:
		if r.step >= 3 {
			return false
		}
		c := [3]render.Color{{R: 1}, {G: 1}, {B: 1}}[r.step]
		m.Fill(c)
	case GlyphTest:
		if r.step >= len(testGlyphs) {
			return false
		}
		m.DrawGlyph(testGlyphs[r.step].g, testGlyphs[r.step].c)
	default:
		return false
	}
	r.step++
	return true
}

// SelfTest runs each kind to completion, rendering one frame per step and
// holding it for frame. The matrix is left dark.
func SelfTest(ctx context.Context, m *Matrix, frame time.Duration, kinds ...TestKind) error {
	if len(kinds) == 0 {
		kinds = AllTests
	}
	for _, k := range kinds {
		m.log.Info().Str("test", string(k)).Msg("self-test")
		r := NewRunner(k)
		for r.Step(m) {
			if err := m.Render(); err != nil {
				return err
			}
			if err := sleep(ctx, frame); err != nil {
				return err
			}
		}
	}
	m.Clear()
	return m.Render()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
