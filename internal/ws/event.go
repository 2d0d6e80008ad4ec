package ws

type Severity string

const (
	Info Severity = "info"
	Warn Severity = "warning"
	Err  Severity = "error"
)

// Event is a game or device notice pushed to preview clients.
type Event struct {
	Severity Severity       `json:"severity"`
	Code     string         `json:"code"`
	Summary  string         `json:"summary"`
	Detail   string         `json:"detail,omitempty"`
	Evidence map[string]any `json:"evidence,omitempty"`
}

// Status is the last known game state.
type Status struct {
	GameID string `json:"game_id"`
	State  string `json:"state"`
	Seed   int64  `json:"seed"`
	Round  int    `json:"round"`
	Score  int    `json:"score"`
	Best   int    `json:"best"`
	Games  int    `json:"games"`
}

type topology struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Serpentine bool `json:"serpentine"`
}

// message is every server → client payload; Type selects the filled field.
type message struct {
	Type    string    `json:"type"`
	T       int64     `json:"t"`
	FrameID uint64    `json:"frame_id,omitempty"`
	RGB     []byte    `json:"rgb,omitempty"`
	Layout  *topology `json:"layout,omitempty"`
	Status  *Status   `json:"status,omitempty"`
	Event   *Event    `json:"event,omitempty"`
}

// control is a client → server message.
type control struct {
	Press string `json:"press"`
}
