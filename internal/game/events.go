package game

// EventKind identifies what changed in the session. The presentation
// layer drains events after every command and reacts to each kind; the
// engine never renders or plays anything itself.
type EventKind int

const (
	EventPhaseChanged EventKind = iota
	EventGridChanged
	EventSelectionChanged
	EventMovesChanged
	EventTimeChanged
	EventPlaySound
	EventValidationFailed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPhaseChanged:
		return "phase_changed"
	case EventGridChanged:
		return "grid_changed"
	case EventSelectionChanged:
		return "selection_changed"
	case EventMovesChanged:
		return "moves_changed"
	case EventTimeChanged:
		return "time_changed"
	case EventPlaySound:
		return "play_sound"
	case EventValidationFailed:
		return "validation_failed"
	default:
		return "unknown"
	}
}

// Sound names an audio cue for the presentation layer to play.
type Sound string

const (
	SoundVictory  Sound = "victory"
	SoundGameOver Sound = "gameover"
)

// Event is one change notification. Only the fields relevant to Kind
// are set: Phase for EventPhaseChanged, Sound for EventPlaySound and
// Reason for EventValidationFailed.
type Event struct {
	Kind   EventKind
	Phase  Phase
	Sound  Sound
	Reason string
}
