package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

var (
	ErrPinNotFound = errors.New("buzzer pin not found")
	ErrChannel     = errors.New("no buzzer on channel")
)

// GPIO bit-bangs square waves on passive buzzers.
type GPIO struct {
	pins  []gpio.PinOut
	sleep func(time.Duration)
}

// NewGPIO drives one buzzer per pin; pins[i] plays channel i.
func NewGPIO(pins ...gpio.PinOut) (*GPIO, error) {
	for i, p := range pins {
		if p == nil {
			return nil, fmt.Errorf("%w: channel %d", ErrPinNotFound, i)
		}
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("buzzer %s: %w", p, err)
		}
	}
	return &GPIO{pins: pins, sleep: time.Sleep}, nil
}

// OpenGPIO looks the pins up by name in the periph registry. host.Init must
// have run.
func OpenGPIO(names ...string) (*GPIO, error) {
	pins := make([]gpio.PinOut, len(names))
	for i, n := range names {
		p := gpioreg.ByName(n)
		if p == nil {
			return nil, fmt.Errorf("%w: %q", ErrPinNotFound, n)
		}
		pins[i] = p
	}
	return NewGPIO(pins...)
}

func (g *GPIO) Play(t Tone) error {
	if t.Channel < 0 || t.Channel >= len(g.pins) {
		return fmt.Errorf("%w %d", ErrChannel, t.Channel)
	}
	pin := g.pins[t.Channel]
	half := t.Freq.Period() / 2
	for i := t.Cycles(); i > 0; i-- {
		if err := pin.Out(gpio.High); err != nil {
			return err
		}
		g.sleep(half)
		if err := pin.Out(gpio.Low); err != nil {
			return err
		}
		g.sleep(half)
	}
	return nil
}

// Silent keeps tone timing without hardware, for the simulator.
type Silent struct {
	Log   zerolog.Logger
	sleep func(time.Duration)
}

func NewSilent(lg zerolog.Logger) *Silent {
	return &Silent{Log: lg, sleep: time.Sleep}
}

func (s *Silent) Play(t Tone) error {
	s.Log.Trace().Stringer("tone", t).Msg("beep")
	s.sleep(t.Duration)
	return nil
}
