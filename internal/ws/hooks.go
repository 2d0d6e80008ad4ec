package ws

import "github.com/coreman2200/funtimes-genius/internal/game"

// Hooks reports game progress to preview clients.
func (h *Hub) Hooks() game.Hooks {
	return game.Hooks{
		GameStarted: func(s *game.Session) {
			h.update(s)
			h.Publish(Event{Severity: Info, Code: "GAME.START", Summary: "Good game!",
				Evidence: map[string]any{"game_id": s.ID, "seed": s.Seed}})
		},
		SequenceShown: func(s *game.Session) {
			h.update(s)
		},
		Pressed: func(b game.Button, index int, correct bool) {
			h.Publish(Event{Severity: Info, Code: "PRESS", Summary: b.Color().String(),
				Evidence: map[string]any{"button": b.String(), "index": index, "correct": correct}})
		},
		RoundWon: func(s *game.Session, credited int) {
			h.update(s)
			h.Publish(Event{Severity: Info, Code: "ROUND.WON", Summary: "Correct sequence!",
				Evidence: map[string]any{"round": s.Round(), "credited": credited, "score": s.Score.Total()}})
		},
		RoundLost: func(s *game.Session, at, credited int) {
			h.update(s)
			h.Publish(Event{Severity: Warn, Code: "ROUND.LOST", Summary: "Game over",
				Evidence: map[string]any{"round": s.Round(), "mismatch": at, "credited": credited, "score": s.Score.Total()}})
		},
	}
}

func (h *Hub) update(s *game.Session) {
	st := Status{
		GameID: s.ID,
		State:  s.State.String(),
		Seed:   s.Seed,
		Round:  s.Round(),
		Score:  s.Score.Total(),
		Best:   s.BestScore,
		Games:  s.Games,
	}
	h.mu.Lock()
	h.status = st
	h.mu.Unlock()
	h.broadcast(message{Type: "status", Status: &st})
}
