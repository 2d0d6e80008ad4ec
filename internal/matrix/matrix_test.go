package matrix

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-genius/internal/layout"
	"github.com/coreman2200/funtimes-genius/internal/render"
)

type recorder struct {
	frames [][]byte
	err    error
	closed bool
}

func (r *recorder) Write(rgb []byte) error {
	r.frames = append(r.frames, append([]byte(nil), rgb...))
	return r.err
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

func (r *recorder) last() []byte { return r.frames[len(r.frames)-1] }

var board = layout.Layout{Width: 5, Height: 5, Serpentine: true}

func newTestMatrix(t *testing.T) (*Matrix, *recorder) {
	t.Helper()
	rec := &recorder{}
	m, err := New(Config{Layout: board, Driver: rec})
	require.NoError(t, err)
	return m, rec
}

func lit(frame []byte) []int {
	var out []int
	for i := 0; i*3 < len(frame); i++ {
		if frame[i*3]|frame[i*3+1]|frame[i*3+2] != 0 {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

func TestNewPushesDarkFrame(t *testing.T) {
	m, rec := newTestMatrix(t)
	require.Len(t, rec.frames, 1)
	assert.Len(t, rec.frames[0], 75)
	assert.Empty(t, lit(rec.frames[0]))
	assert.Equal(t, 25, m.Count())
}

func TestNewFaults(t *testing.T) {
	_, err := New(Config{Layout: board})
	assert.ErrorIs(t, err, ErrNoDriver)

	_, err = New(Config{Layout: layout.Layout{}, Driver: &recorder{}})
	assert.ErrorIs(t, err, ErrLayout)

	fault := errors.New("no spi")
	_, err = New(Config{Layout: board, Driver: &recorder{err: fault}})
	assert.ErrorIs(t, err, fault)
}

func TestSetPixelAndRender(t *testing.T) {
	m, rec := newTestMatrix(t)
	require.NoError(t, m.SetPixel(7, render.Color{R: 1}))
	require.NoError(t, m.Render())
	frame := rec.last()
	assert.Equal(t, []byte{255, 0, 0}, frame[21:24])

	assert.ErrorIs(t, m.SetPixel(25, render.White), render.ErrPixelRange)
	assert.ErrorIs(t, m.Set(5, 0, render.White), render.ErrPixelRange)

	m.Clear()
	require.NoError(t, m.Render())
	assert.Empty(t, lit(rec.last()))
}

func TestGlyphsMatchBoardWiring(t *testing.T) {
	cases := []struct {
		name string
		g    Glyph
		want []int
	}{
		{"arrow a", ArrowA, []int{2, 6, 7, 12, 13, 14, 16, 17, 22}},
		{"arrow b", ArrowB, []int{2, 7, 8, 10, 11, 12, 17, 18, 22}},
		{"check", Check, []int{7, 11, 13, 19}},
		{"cross", Cross, []int{0, 4, 6, 8, 12, 16, 18, 20, 24}},
	}
	m, rec := newTestMatrix(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m.DrawGlyph(c.g, render.White)
			require.NoError(t, m.Render())
			assert.Equal(t, c.want, lit(rec.last()))
		})
	}
}

func TestSelfTestSteps(t *testing.T) {
	m, rec := newTestMatrix(t)
	require.NoError(t, SelfTest(context.Background(), m, 0, IndexSweep))
	// init frame + 25 sweep frames + final dark frame
	require.Len(t, rec.frames, 27)
	for i := 0; i < 25; i++ {
		assert.Equal(t, []int{i}, lit(rec.frames[i+1]))
	}
	assert.Empty(t, lit(rec.last()))
}

func TestSelfTestAllKinds(t *testing.T) {
	m, rec := newTestMatrix(t)
	require.NoError(t, SelfTest(context.Background(), m, 0))
	assert.Len(t, rec.frames, 1+25+5+3+4+1)
}

func TestSelfTestCancelled(t *testing.T) {
	m, _ := newTestMatrix(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, SelfTest(ctx, m, 0, RGBTest), context.Canceled)
}

func TestCloseBlanksAndReleases(t *testing.T) {
	m, rec := newTestMatrix(t)
	m.Fill(render.White)
	require.NoError(t, m.Close())
	assert.Empty(t, lit(rec.last()))
	assert.True(t, rec.closed)
}
