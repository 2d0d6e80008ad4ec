package button

import (
	"sync"
	"time"

	"github.com/coreman2200/funtimes-genius/internal/game"
)

// DefaultWindow is how long a simulated press stays available to the poller.
const DefaultWindow = 250 * time.Millisecond

// Latch turns discrete press events (keyboard, websocket, HTTP) into a
// ButtonReader. Each Press is read as pressed exactly once, and only if the
// game polls for it within the window; presses made while the game is busy
// showing the sequence expire, like a real button released too early.
type Latch struct {
	mu      sync.Mutex
	pending [2][]time.Time
	window  time.Duration
	now     func() time.Time
}

func NewLatch(window time.Duration) *Latch {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Latch{window: window, now: time.Now}
}

// Press queues one press of b. Safe from any goroutine.
func (l *Latch) Press(b game.Button) {
	if int(b) >= len(l.pending) {
		return
	}
	l.mu.Lock()
	l.pending[b] = append(l.pending[b], l.now())
	l.mu.Unlock()
}

func (l *Latch) ReadButton(b game.Button) bool {
	if int(b) >= len(l.pending) {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	q := l.pending[b]
	for len(q) > 0 && now.Sub(q[0]) > l.window {
		q = q[1:]
	}
	if len(q) == 0 {
		l.pending[b] = nil
		return false
	}
	l.pending[b] = q[1:]
	return true
}

// Any combines readers; a button is pressed if any source reports it.
type Any []game.ButtonReader

func (a Any) ReadButton(b game.Button) bool {
	for _, r := range a {
		if r.ReadButton(b) {
			return true
		}
	}
	return false
}
