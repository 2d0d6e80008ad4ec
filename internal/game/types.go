package game

import "fmt"

// MaxLength is the capacity of every generated sequence.
const MaxLength = 100

// Scoring rules.
const (
	RoundBonus      = 100
	PointsPerSymbol = 10
)

// FailureBlinks is how many times the failure feedback repeats on a loss.
const FailureBlinks = 3

// Color is one of the two symbols a sequence is built from.
type Color uint8

const (
	Yellow Color = iota
	Blue
)

func (c Color) String() string {
	switch c {
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// Valid reports whether c is Yellow or Blue.
func (c Color) Valid() bool { return c == Yellow || c == Blue }

// Button identifies one of the two physical inputs.
type Button uint8

const (
	ButtonA Button = iota // yellow
	ButtonB               // blue
)

// Buttons lists the inputs in polling order; the first one wins a tie.
var Buttons = [...]Button{ButtonA, ButtonB}

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	default:
		return fmt.Sprintf("button(%d)", uint8(b))
	}
}

// Color returns the symbol a press of b stands for.
func (b Button) Color() Color {
	if b == ButtonB {
		return Blue
	}
	return Yellow
}

// ParseButton maps "a"/"A"/"yellow" and "b"/"B"/"blue" to a Button.
func ParseButton(s string) (Button, bool) {
	switch s {
	case "a", "A", "yellow":
		return ButtonA, true
	case "b", "B", "blue":
		return ButtonB, true
	}
	return 0, false
}

// State is a round controller state.
type State int

const (
	GeneratingSequence State = iota
	DisplayingSequence
	AwaitingInput
	RoundSuccess
	RoundFailure
)

func (s State) String() string {
	switch s {
	case GeneratingSequence:
		return "generating"
	case DisplayingSequence:
		return "displaying"
	case AwaitingInput:
		return "awaiting_input"
	case RoundSuccess:
		return "round_success"
	case RoundFailure:
		return "round_failure"
	default:
		return "unknown"
	}
}
