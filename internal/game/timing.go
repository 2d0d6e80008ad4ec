package game

import "time"

// Timings are the fixed pauses between game steps.
type Timings struct {
	Startup      time.Duration // before the first round of the process
	SymbolGap    time.Duration // between symbols while showing the sequence
	Poll         time.Duration // between button polls
	Debounce     time.Duration // hold after an accepted press
	SuccessPause time.Duration // after the success feedback
	RoundPause   time.Duration // between rounds
	FailureGap   time.Duration // between failure blinks
	RestartPause time.Duration // each of the two pauses around the restart notice
}

// DefaultTimings mirrors the pacing of the device firmware.
func DefaultTimings() Timings {
	return Timings{
		Startup:      3 * time.Second,
		SymbolGap:    200 * time.Millisecond,
		Poll:         5 * time.Millisecond,
		Debounce:     100 * time.Millisecond,
		SuccessPause: 500 * time.Millisecond,
		RoundPause:   time.Second,
		FailureGap:   200 * time.Millisecond,
		RestartPause: time.Second,
	}
}
