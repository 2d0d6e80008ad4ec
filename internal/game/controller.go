package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrUnknownState is returned by Step for a state outside the round machine.
var ErrUnknownState = errors.New("unknown game state")

// Config wires a Controller to its collaborators.
type Config struct {
	Generator *Generator
	Buttons   ButtonReader
	Feedback  FeedbackDispatcher
	Clock     Clock // defaults to RealClock
	Timings   Timings
	Hooks     Hooks
	Logger    *zerolog.Logger // defaults to a no-op logger
}

// Controller is the per-round state machine. It owns no game state; every
// Step borrows a Session for exactly one transition.
type Controller struct {
	gen       *Generator
	validator *Validator
	feedback  FeedbackDispatcher
	clock     Clock
	timings   Timings
	hooks     Hooks
	log       zerolog.Logger
	newID     func() string
}

func NewController(cfg Config) *Controller {
	clock := cfg.Clock
	if clock == nil {
		clock = RealClock{}
	}
	gen := cfg.Generator
	if gen == nil {
		gen = NewGenerator(nil)
	}
	lg := zerolog.Nop()
	if cfg.Logger != nil {
		lg = *cfg.Logger
	}
	v := NewValidator(cfg.Buttons, cfg.Feedback, clock, cfg.Timings)
	v.OnPress = cfg.Hooks.Pressed
	return &Controller{
		gen:       gen,
		validator: v,
		feedback:  cfg.Feedback,
		clock:     clock,
		timings:   cfg.Timings,
		hooks:     cfg.Hooks,
		log:       lg,
		newID:     uuid.NewString,
	}
}

// Step performs the transition out of s.State and leaves s in the next state.
func (c *Controller) Step(ctx context.Context, s *Session) error {
	switch s.State {
	case GeneratingSequence:
		c.generate(s)
		return nil
	case DisplayingSequence:
		return c.display(ctx, s)
	case AwaitingInput:
		return c.await(ctx, s)
	case RoundSuccess:
		return c.succeed(ctx, s)
	case RoundFailure:
		return c.fail(ctx, s)
	}
	return fmt.Errorf("%w: %d", ErrUnknownState, int(s.State))
}

func (c *Controller) generate(s *Session) {
	seq := c.gen.Generate()
	s.ID = c.newID()
	s.Seed = c.gen.LastSeed()
	s.Pattern.Reset(seq)
	s.Score.Reset()
	s.mismatch = -1
	s.Games++

	s.Pattern.Advance()
	s.State = DisplayingSequence

	c.log.Info().Str("game", s.ID).Int64("seed", s.Seed).Int("games", s.Games).Msg("good game!")
	if c.hooks.GameStarted != nil {
		c.hooks.GameStarted(s)
	}
}

func (c *Controller) display(ctx context.Context, s *Session) error {
	seq := s.Pattern.Sequence()
	n := s.Pattern.Len()
	c.log.Debug().Str("game", s.ID).Int("round", n).Str("prefix", seq.Prefix(n)).Msg("showing sequence")
	for i := 0; i < n; i++ {
		if err := c.feedback.DisplayColor(seq[i]); err != nil {
			return fmt.Errorf("show symbol %d: %w", i, err)
		}
		if err := c.clock.Sleep(ctx, c.timings.SymbolGap); err != nil {
			return err
		}
	}
	s.State = AwaitingInput
	if c.hooks.SequenceShown != nil {
		c.hooks.SequenceShown(s)
	}
	return nil
}

func (c *Controller) await(ctx context.Context, s *Session) error {
	res, err := c.validator.Collect(ctx, s.Pattern.Sequence(), s.Pattern.Len())
	if err != nil {
		return err
	}
	if res.Matched {
		s.State = RoundSuccess
		return nil
	}
	s.mismatch = res.Index
	s.State = RoundFailure
	return nil
}

func (c *Controller) succeed(ctx context.Context, s *Session) error {
	n := s.Pattern.Len()
	credit := RoundCredit(n)
	s.Score.Credit(credit)
	c.log.Info().Str("game", s.ID).Int("round", n).Int("credit", credit).Int("score", s.Score.Total()).Msg("correct sequence!")
	if c.hooks.RoundWon != nil {
		c.hooks.RoundWon(s, credit)
	}

	if err := c.feedback.DisplaySuccess(); err != nil {
		return fmt.Errorf("success feedback: %w", err)
	}
	if !s.Pattern.Advance() {
		c.log.Warn().Str("game", s.ID).Int("round", n).Msg("sequence exhausted, replaying full length")
	}
	if err := c.clock.Sleep(ctx, c.timings.SuccessPause); err != nil {
		return err
	}
	if err := c.clock.Sleep(ctx, c.timings.RoundPause); err != nil {
		return err
	}
	s.State = DisplayingSequence
	return nil
}

func (c *Controller) fail(ctx context.Context, s *Session) error {
	at := s.mismatch
	credit := PartialCredit(at)
	s.Score.Credit(credit)
	if s.Score.Total() > s.BestScore {
		s.BestScore = s.Score.Total()
	}
	c.log.Info().Str("game", s.ID).Int("round", s.Pattern.Len()).Int("mismatch", at).
		Int("credit", credit).Int("score", s.Score.Total()).Int("best", s.BestScore).Msg("game over :(")
	if c.hooks.RoundLost != nil {
		c.hooks.RoundLost(s, at, credit)
	}

	for i := 0; i < FailureBlinks; i++ {
		if err := c.feedback.DisplayFailure(); err != nil {
			return fmt.Errorf("failure feedback: %w", err)
		}
		if err := c.clock.Sleep(ctx, c.timings.FailureGap); err != nil {
			return err
		}
	}

	if err := c.clock.Sleep(ctx, c.timings.RestartPause); err != nil {
		return err
	}
	c.log.Info().Str("game", s.ID).Msg("restarting...")
	if err := c.clock.Sleep(ctx, c.timings.RestartPause); err != nil {
		return err
	}
	if err := c.clock.Sleep(ctx, c.timings.RoundPause); err != nil {
		return err
	}
	s.State = GeneratingSequence
	return nil
}
