package game

// Session is everything one running game owns: the sequence and the prefix in
// play, the score, and where the round state machine currently stands.
// A restart regenerates the sequence and resets prefix and score in place.
type Session struct {
	ID      string // per-game id, renewed on every generation
	Seed    int64  // seed of the current sequence
	State   State
	Pattern Pattern
	Score   ScoreTracker

	Games     int // sequences generated so far
	BestScore int // highest final score of any game in this session

	mismatch int
}

// NewSession returns a session waiting for its first sequence.
func NewSession() *Session {
	return &Session{State: GeneratingSequence, mismatch: -1}
}

// Round is the current prefix length, i.e. the 1-based round number.
func (s *Session) Round() int { return s.Pattern.Len() }

// Mismatch is the index of the wrong press of a lost round, or -1.
func (s *Session) Mismatch() int { return s.mismatch }
