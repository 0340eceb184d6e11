package game

// Phase is the session state. Exactly one phase is active at a time;
// the session owns all transitions between them.
type Phase int

const (
	PhaseSplash Phase = iota
	PhaseMenu
	PhasePlaying
	PhaseWon
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
