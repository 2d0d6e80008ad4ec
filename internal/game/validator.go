package game

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrPrefixRange is returned when asked to collect more presses than a
// sequence holds.
var ErrPrefixRange = errors.New("prefix length out of range")

// MatchResult is the outcome of collecting one round of presses.
type MatchResult struct {
	Matched bool
	Index   int // position of the first wrong press; -1 when Matched
}

// AllMatched is the result of a fully reproduced prefix.
func AllMatched() MatchResult { return MatchResult{Matched: true, Index: -1} }

// MismatchAt is the result of a wrong press at position i.
func MismatchAt(i int) MatchResult { return MatchResult{Index: i} }

func (r MatchResult) String() string {
	if r.Matched {
		return "all_matched"
	}
	return fmt.Sprintf("mismatch_at(%d)", r.Index)
}

// Validator compares player presses against the expected prefix.
type Validator struct {
	buttons  ButtonReader
	feedback FeedbackDispatcher
	clock    Clock
	poll     time.Duration
	debounce time.Duration

	// OnPress, if set, observes every logical press.
	OnPress func(b Button, index int, correct bool)
}

func NewValidator(buttons ButtonReader, fb FeedbackDispatcher, clock Clock, t Timings) *Validator {
	return &Validator{
		buttons:  buttons,
		feedback: fb,
		clock:    clock,
		poll:     t.Poll,
		debounce: t.Debounce,
	}
}

// Collect reads up to count presses and checks them in order against
// expected. It blocks until the round is decided; there is no input timeout.
// A non-nil error means ctx was cancelled or the feedback hardware failed.
func (v *Validator) Collect(ctx context.Context, expected Sequence, count int) (MatchResult, error) {
	if count < 0 || count > MaxLength {
		return MatchResult{}, fmt.Errorf("%w: %d", ErrPrefixRange, count)
	}
	for i := 0; i < count; i++ {
		b, err := v.waitPress(ctx)
		if err != nil {
			return MatchResult{}, err
		}

		// The player always sees and hears what was pressed.
		pressed := b.Color()
		if err := v.feedback.DisplayColor(pressed); err != nil {
			return MatchResult{}, fmt.Errorf("press feedback: %w", err)
		}

		correct := pressed == expected[i]
		if v.OnPress != nil {
			v.OnPress(b, i, correct)
		}
		if !correct {
			return MismatchAt(i), nil
		}

		if err := v.clock.Sleep(ctx, v.debounce); err != nil {
			return MatchResult{}, err
		}
	}
	return AllMatched(), nil
}

// waitPress polls both buttons until one reads pressed. ButtonA is checked
// first, so it wins when both are down.
func (v *Validator) waitPress(ctx context.Context) (Button, error) {
	for {
		for _, b := range Buttons {
			if v.buttons.ReadButton(b) {
				return b, nil
			}
		}
		if err := v.clock.Sleep(ctx, v.poll); err != nil {
			return 0, err
		}
	}
}
