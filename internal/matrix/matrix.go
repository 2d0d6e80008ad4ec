package matrix

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-genius/internal/layout"
	"github.com/coreman2200/funtimes-genius/internal/led"
	"github.com/coreman2200/funtimes-genius/internal/render"
)

var (
	ErrNoDriver = errors.New("matrix: no led driver")
	ErrLayout   = errors.New("matrix: empty layout")
)

type Config struct {
	Layout     layout.Layout
	Driver     led.Driver
	Brightness float32
	Limits     render.Limits
	Logger     *zerolog.Logger
}

// Matrix is the display capability: a frame buffer over a layout, pushed to
// an LED driver on Render.
type Matrix struct {
	layout layout.Layout
	canvas *render.Canvas
	drv    led.Driver
	frame  []byte
	log    zerolog.Logger
}

// New initializes the display and pushes one dark frame. Any error here is a
// startup fault.
func New(cfg Config) (*Matrix, error) {
	if cfg.Driver == nil {
		return nil, ErrNoDriver
	}
	n := cfg.Layout.Count()
	if n <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrLayout, cfg.Layout.Width, cfg.Layout.Height)
	}
	lg := zerolog.Nop()
	if cfg.Logger != nil {
		lg = *cfg.Logger
	}
	c := render.NewCanvas(n)
	c.Brightness = cfg.Brightness
	c.Limits = cfg.Limits
	m := &Matrix{
		layout: cfg.Layout,
		canvas: c,
		drv:    cfg.Driver,
		frame:  make([]byte, n*3),
		log:    lg,
	}
	if err := m.Render(); err != nil {
		return nil, fmt.Errorf("matrix init: %w", err)
	}
	m.log.Debug().Int("leds", n).Int("width", cfg.Layout.Width).Int("height", cfg.Layout.Height).Msg("matrix ready")
	return m, nil
}

func (m *Matrix) Layout() layout.Layout { return m.layout }

func (m *Matrix) Count() int { return m.canvas.Len() }

func (m *Matrix) Clear() { m.canvas.Clear() }

func (m *Matrix) Fill(c render.Color) { m.canvas.Fill(c) }

// SetPixel sets the LED at strip index i.
func (m *Matrix) SetPixel(i int, c render.Color) error {
	return m.canvas.Set(i, c)
}

// Set sets the LED at matrix coordinate x,y.
func (m *Matrix) Set(x, y int, c render.Color) error {
	i := m.layout.Index(x, y)
	if i < 0 {
		return fmt.Errorf("%w: (%d,%d)", render.ErrPixelRange, x, y)
	}
	return m.canvas.Set(i, c)
}

// Pixel reads back the unscaled color at strip index i.
func (m *Matrix) Pixel(i int) render.Color { return m.canvas.At(i) }

// Render encodes the buffer and writes it to the driver.
func (m *Matrix) Render() error {
	m.frame = m.canvas.Encode(m.frame)
	if err := m.drv.Write(m.frame); err != nil {
		return fmt.Errorf("matrix render: %w", err)
	}
	return nil
}

// Close blanks the matrix and releases the driver.
func (m *Matrix) Close() error {
	m.canvas.Clear()
	rerr := m.Render()
	return errors.Join(rerr, m.drv.Close())
}
