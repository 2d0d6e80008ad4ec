package feedback

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-genius/internal/audio"
	"github.com/coreman2200/funtimes-genius/internal/game"
	"github.com/coreman2200/funtimes-genius/internal/matrix"
	"github.com/coreman2200/funtimes-genius/internal/render"
)

// DefaultHold is how long a glyph stays lit after its tone ends.
const DefaultHold = 500 * time.Millisecond

var ErrUnknownColor = errors.New("no cue for color")

// Display is the part of the matrix the dispatcher drives.
type Display interface {
	DrawGlyph(g matrix.Glyph, c render.Color)
	Clear()
	Render() error
}

// Cue is one complete presentation: a glyph, its color and its tone.
type Cue struct {
	Glyph matrix.Glyph
	Color render.Color
	Tone  audio.Tone
}

var (
	CueYellow  = Cue{matrix.ArrowA, render.Yellow, audio.ToneYellow}
	CueBlue    = Cue{matrix.ArrowB, render.Blue, audio.ToneBlue}
	CueSuccess = Cue{matrix.Check, render.Green, audio.ToneSuccess}
	CueFailure = Cue{matrix.Cross, render.Red, audio.ToneError}
)

// Dispatcher implements game.FeedbackDispatcher on a matrix and buzzers.
type Dispatcher struct {
	display Display
	buzzer  audio.Buzzer
	hold    time.Duration
	sleep   func(time.Duration)
	log     zerolog.Logger
}

// New returns a dispatcher holding each glyph for hold (DefaultHold if 0).
func New(d Display, b audio.Buzzer, hold time.Duration, lg zerolog.Logger) *Dispatcher {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Dispatcher{display: d, buzzer: b, hold: hold, sleep: time.Sleep, log: lg}
}

func (f *Dispatcher) DisplayColor(c game.Color) error {
	switch c {
	case game.Yellow:
		return f.Show(CueYellow)
	case game.Blue:
		return f.Show(CueBlue)
	}
	return fmt.Errorf("%w %v", ErrUnknownColor, c)
}

func (f *Dispatcher) DisplaySuccess() error { return f.Show(CueSuccess) }

func (f *Dispatcher) DisplayFailure() error { return f.Show(CueFailure) }

// Show lights the cue, plays its tone, holds, then clears. It blocks for the
// whole presentation.
func (f *Dispatcher) Show(c Cue) error {
	f.log.Trace().Str("tone", c.Tone.Name).Msg("cue")
	f.display.DrawGlyph(c.Glyph, c.Color)
	if err := f.display.Render(); err != nil {
		return err
	}
	if err := f.buzzer.Play(c.Tone); err != nil {
		return fmt.Errorf("play %s: %w", c.Tone.Name, err)
	}
	f.sleep(f.hold)
	f.display.Clear()
	return f.display.Render()
}
