package game

import "context"

// Loop drives a Session through the Controller until ctx is cancelled or a
// collaborator fails. Games restart forever; a loss is not an exit.
type Loop struct {
	ctrl    *Controller
	session *Session
}

func NewLoop(ctrl *Controller) *Loop {
	return &Loop{ctrl: ctrl, session: NewSession()}
}

// Session exposes the state owned by the loop. Read it only from hooks, which
// run on the loop goroutine.
func (l *Loop) Session() *Session { return l.session }

// Run blocks for the life of the process. The returned error is ctx.Err() on
// shutdown, or the hardware fault that stopped the game.
func (l *Loop) Run(ctx context.Context) error {
	c := l.ctrl
	c.log.Info().Msg("starting...")
	if err := c.clock.Sleep(ctx, c.timings.Startup); err != nil {
		return err
	}
	for {
		if err := c.Step(ctx, l.session); err != nil {
			return err
		}
	}
}
