package game

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var errOutOfScript = errors.New("test script exhausted")

// fakeClock advances instantly and stops the game once limit is passed, so a
// test that runs out of presses fails instead of hanging.
type fakeClock struct {
	now    time.Duration
	limit  time.Duration
	sleeps []time.Duration
}

func newFakeClock() *fakeClock { return &fakeClock{limit: time.Hour} }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.now += d
	c.sleeps = append(c.sleeps, d)
	if c.now > c.limit {
		return errOutOfScript
	}
	return nil
}

// window holds a button down during [from, to) on the fake clock.
type window struct {
	b        Button
	from, to time.Duration
}

type scriptedButtons struct {
	clock   *fakeClock
	windows []window
}

func (s *scriptedButtons) ReadButton(b Button) bool {
	for _, w := range s.windows {
		if w.b == b && s.clock.now >= w.from && s.clock.now < w.to {
			return true
		}
	}
	return false
}

// queuedButtons hands out one logical press per queued entry, whenever the
// validator asks for it.
type queuedButtons struct {
	queue []Button
	reads int
}

func (q *queuedButtons) push(bs ...Button) { q.queue = append(q.queue, bs...) }

func (q *queuedButtons) pushColors(cs ...Color) {
	for _, c := range cs {
		q.push(buttonFor(c))
	}
}

func (q *queuedButtons) ReadButton(b Button) bool {
	q.reads++
	if len(q.queue) == 0 || q.queue[0] != b {
		return false
	}
	q.queue = q.queue[1:]
	return true
}

func buttonFor(c Color) Button {
	if c == Blue {
		return ButtonB
	}
	return ButtonA
}

func wrong(c Color) Button {
	if c == Blue {
		return ButtonA
	}
	return ButtonB
}

type recordingFeedback struct {
	events []string
	err    error
}

func (f *recordingFeedback) DisplayColor(c Color) error {
	f.events = append(f.events, "color:"+c.String())
	return f.err
}

func (f *recordingFeedback) DisplaySuccess() error {
	f.events = append(f.events, "success")
	return f.err
}

func (f *recordingFeedback) DisplayFailure() error {
	f.events = append(f.events, "failure")
	return f.err
}

func (f *recordingFeedback) count(ev string) int {
	n := 0
	for _, e := range f.events {
		if e == ev {
			n++
		}
	}
	return n
}

// countingSeeder hands out consecutive seeds starting at next.
type countingSeeder struct {
	next  int64
	calls int
}

func (s *countingSeeder) Seed() int64 {
	s.calls++
	seed := s.next
	s.next++
	return seed
}

func testTimings() Timings {
	t := DefaultTimings()
	t.Poll = time.Millisecond
	return t
}

type rig struct {
	clock    *fakeClock
	buttons  *queuedButtons
	feedback *recordingFeedback
	seeder   *countingSeeder
	ctrl     *Controller
}

func newRig(hooks Hooks) *rig {
	r := &rig{
		clock:    newFakeClock(),
		buttons:  &queuedButtons{},
		feedback: &recordingFeedback{},
		seeder:   &countingSeeder{next: 7},
	}
	r.ctrl = NewController(Config{
		Generator: NewGenerator(r.seeder),
		Buttons:   r.buttons,
		Feedback:  r.feedback,
		Clock:     r.clock,
		Timings:   testTimings(),
		Hooks:     hooks,
	})
	n := 0
	r.ctrl.newID = func() string {
		n++
		return fmt.Sprintf("game-%d", n)
	}
	return r
}

// stepUntil steps s until it reaches state want, failing after a bound.
func (r *rig) stepUntil(ctx context.Context, s *Session, want State) error {
	for i := 0; i < 64; i++ {
		if err := r.ctrl.Step(ctx, s); err != nil {
			return err
		}
		if s.State == want {
			return nil
		}
	}
	return fmt.Errorf("state %v not reached, stuck at %v", want, s.State)
}
