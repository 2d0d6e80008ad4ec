package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var r *rig
	wins := 0
	r = newRig(Hooks{
		SequenceShown: func(s *Session) {
			seq := s.Pattern.Sequence()
			r.buttons.pushColors(seq[:s.Round()]...)
		},
		RoundWon: func(s *Session, credit int) {
			wins++
			if wins == 3 {
				cancel()
			}
		},
	})
	loop := NewLoop(r.ctrl)

	err := loop.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, wins)
	assert.Equal(t, RoundCredit(1)+RoundCredit(2)+RoundCredit(3), loop.Session().Score.Total())
	assert.Equal(t, testTimings().Startup, r.clock.sleeps[0])
}

func TestLoopRestartsAfterLoss(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var r *rig
	r = newRig(Hooks{
		SequenceShown: func(s *Session) {
			r.buttons.push(wrong(s.Pattern.Sequence()[0]))
		},
		GameStarted: func(s *Session) {
			if s.Games == 3 {
				cancel()
			}
		},
	})
	loop := NewLoop(r.ctrl)

	err := loop.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, loop.Session().Games)
	assert.Equal(t, 2*FailureBlinks, r.feedback.count("failure"))
	assert.Equal(t, 3, r.seeder.calls)
}
