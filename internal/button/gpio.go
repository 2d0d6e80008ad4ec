package button

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/coreman2200/funtimes-genius/internal/game"
)

var ErrPinNotFound = errors.New("button pin not found")

// GPIO reads two push buttons wired to ground with the internal pull-up
// enabled, so a pressed button reads Low.
type GPIO struct {
	pins [2]gpio.PinIn
}

func NewGPIO(a, b gpio.PinIn) (*GPIO, error) {
	g := &GPIO{}
	for i, p := range []gpio.PinIn{a, b} {
		if p == nil {
			return nil, fmt.Errorf("%w: %s", ErrPinNotFound, game.Button(i))
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("button %s on %s: %w", game.Button(i), p, err)
		}
		g.pins[i] = p
	}
	return g, nil
}

// OpenGPIO looks both pins up in the periph registry. host.Init must have
// run.
func OpenGPIO(a, b string) (*GPIO, error) {
	pa, pb := gpioreg.ByName(a), gpioreg.ByName(b)
	if pa == nil {
		return nil, fmt.Errorf("%w: %q", ErrPinNotFound, a)
	}
	if pb == nil {
		return nil, fmt.Errorf("%w: %q", ErrPinNotFound, b)
	}
	return NewGPIO(pa, pb)
}

func (g *GPIO) ReadButton(b game.Button) bool {
	if int(b) >= len(g.pins) {
		return false
	}
	return g.pins[b].Read() == gpio.Low
}
