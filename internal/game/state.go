package game

// State is the progress of the current turn.
type State int

const (
	Idle        State = iota // waiting for a pick
	PiecePicked              // board on loan to a picked piece
	PiecePlaced              // piece moved, side not yet changed
	Ended                    // terminal
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case PiecePicked:
		return "PiecePicked"
	case PiecePlaced:
		return "PiecePlaced"
	case Ended:
		return "Ended"
	}
	return "Unknown"
}
