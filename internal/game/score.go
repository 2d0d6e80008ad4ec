package game

// ScoreTracker accumulates points across the rounds of one game.
type ScoreTracker struct {
	total int
}

// Credit adds n points. Negative amounts are ignored so the total never drops.
func (s *ScoreTracker) Credit(n int) {
	if n <= 0 {
		return
	}
	s.total += n
}

// Reset zeroes the total. Only a new game does this.
func (s *ScoreTracker) Reset() { s.total = 0 }

// Total is the running score.
func (s *ScoreTracker) Total() int { return s.total }

// RoundCredit is what a fully reproduced prefix of length n is worth.
func RoundCredit(n int) int { return RoundBonus + n*PointsPerSymbol }

// PartialCredit is what a round lost at index i is worth: the symbols
// reproduced correctly before the mistake.
func PartialCredit(i int) int { return i * PointsPerSymbol }
