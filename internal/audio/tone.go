package audio

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Tone is a square wave on one of the two buzzers.
type Tone struct {
	Name     string
	Channel  int // 0 = buzzer A, 1 = buzzer B
	Freq     physic.Frequency
	Duration time.Duration
}

var (
	ToneYellow  = Tone{Name: "yellow", Channel: 0, Freq: 1 * physic.KiloHertz, Duration: 200 * time.Millisecond}
	ToneBlue    = Tone{Name: "blue", Channel: 1, Freq: 1250 * physic.Hertz, Duration: 160 * time.Millisecond}
	ToneError   = Tone{Name: "error", Channel: 0, Freq: 500 * physic.Hertz, Duration: 200 * time.Millisecond}
	ToneSuccess = Tone{Name: "success", Channel: 1, Freq: 2 * physic.KiloHertz, Duration: 100 * time.Millisecond}
)

// Cycles is the number of full periods that fit in Duration.
func (t Tone) Cycles() int {
	p := t.Freq.Period()
	if p <= 0 {
		return 0
	}
	return int(t.Duration / p)
}

func (t Tone) String() string {
	return fmt.Sprintf("%s(%s, %s, ch%d)", t.Name, t.Freq, t.Duration, t.Channel)
}

// Buzzer plays a tone to completion before returning.
type Buzzer interface {
	Play(t Tone) error
}
