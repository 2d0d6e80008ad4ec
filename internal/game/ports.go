package game

import (
	"context"
	"time"
)

// FeedbackDispatcher presents colors and round outcomes to the player. Every
// call blocks until the presentation (light, tone, clear) has finished.
type FeedbackDispatcher interface {
	DisplayColor(c Color) error
	DisplaySuccess() error
	DisplayFailure() error
}

// ButtonReader reports whether a button is held down right now.
type ButtonReader interface {
	ReadButton(b Button) bool
}

// Clock paces the game. Sleep blocks for d or until ctx is done.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock sleeps on the wall clock.
type RealClock struct{}

func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
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

// Hooks are optional observers of game progress, called on the game
// goroutine. Nil fields are skipped.
type Hooks struct {
	GameStarted   func(s *Session)
	SequenceShown func(s *Session)
	Pressed       func(b Button, index int, correct bool)
	RoundWon      func(s *Session, credited int)
	RoundLost     func(s *Session, at int, credited int)
}
