// Package game implements the puzzle session: the phase state machine,
// move legality, win detection, the countdown clock and score recording.
// The session is driven entirely by discrete external commands (tile
// taps, one-second ticks, start/give-up/acknowledge) processed one at a
// time; it owns no goroutines and never blocks the caller.
package game

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tileswap/internal/board"
	"github.com/vovakirdan/tileswap/internal/scores"
)

// ErrEmptyName rejects a start request with a blank player name.
var ErrEmptyName = errors.New("game: player name must not be empty")

// Options tunes session behavior. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	// SplashSeconds is how many one-second ticks the splash phase
	// shows before the menu appears.
	SplashSeconds int
	// TimeLimits maps grid size to the countdown in seconds.
	TimeLimits map[int]int
}

// DefaultOptions returns the stock time limits (30/60/90/120 seconds
// for 3×3 through 6×6) and a two-second splash.
func DefaultOptions() Options {
	return Options{
		SplashSeconds: 2,
		TimeLimits: map[int]int{
			3: 30,
			4: 60,
			5: 90,
			6: 120,
		},
	}
}

// TimeLimit returns the countdown for an N×N grid.
func (o Options) TimeLimit(size int) int {
	return o.TimeLimits[size]
}

// Session is one player's run of the puzzle, from splash through any
// number of games and back to the menu. All state lives here; there are
// no package-level timers or sound handles.
type Session struct {
	opts   Options
	rng    *rand.Rand
	ledger *scores.Ledger
	now    func() time.Time

	phase       Phase
	splashTicks int

	// Menu state, carried between games.
	gridSize   int
	playerName string

	// Per-game state, reset by StartGame.
	target    board.Grid
	grid      board.Grid
	selection *board.Cell
	moves     int
	timeLeft  int

	events []Event
}

// NewSession creates a session in the splash phase. The ledger may be
// backed by a nil store; score recording then stays in memory.
func NewSession(opts Options, rng *rand.Rand, ledger *scores.Ledger) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if ledger == nil {
		ledger = scores.Load(nil, nil)
	}
	return &Session{
		opts:     opts,
		rng:      rng,
		ledger:   ledger,
		now:      time.Now,
		phase:    PhaseSplash,
		gridSize: board.MinSize,
	}
}

// Phase returns the active phase.
func (s *Session) Phase() Phase { return s.phase }

// Moves returns the current move counter.
func (s *Session) Moves() int { return s.moves }

// TimeLeft returns the remaining seconds of the countdown.
func (s *Session) TimeLeft() int { return s.timeLeft }

// GridSize returns the currently selected board dimension.
func (s *Session) GridSize() int { return s.gridSize }

// PlayerName returns the name used for the current or next game.
func (s *Session) PlayerName() string { return s.playerName }

// Ledger exposes the score ledger for read access and resets.
func (s *Session) Ledger() *scores.Ledger { return s.ledger }

// Events drains and returns the change notifications accumulated since
// the previous call.
func (s *Session) Events() []Event {
	out := s.events
	s.events = nil
	return out
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) setPhase(p Phase) {
	s.phase = p
	s.emit(Event{Kind: EventPhaseChanged, Phase: p})
}

// SetPlayerName records the name the next StartGame will use.
func (s *Session) SetPlayerName(name string) {
	s.playerName = name
}

// SetGridSize picks the board dimension for the next game. Legal before
// a game starts (splash or menu); unsupported sizes and calls during a
// game or its end screens are ignored.
func (s *Session) SetGridSize(size int) {
	if s.phase != PhaseMenu && s.phase != PhaseSplash {
		return
	}
	if !board.ValidSize(size) {
		return
	}
	s.gridSize = size
}

// StartGame begins a game with the session's grid size and the given
// player name. The name must be non-empty after trimming; otherwise the
// transition is rejected with ErrEmptyName and a validation event.
// Calls outside the menu phase are ignored.
func (s *Session) StartGame(name string) error {
	if s.phase != PhaseMenu {
		return nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		s.emit(Event{Kind: EventValidationFailed, Reason: "enter your name to start"})
		return ErrEmptyName
	}
	s.playerName = name

	s.target, s.grid = board.New(s.gridSize, s.rng)
	s.selection = nil
	s.moves = 0
	s.timeLeft = s.opts.TimeLimit(s.gridSize)

	s.setPhase(PhasePlaying)
	s.emit(Event{Kind: EventGridChanged})
	s.emit(Event{Kind: EventSelectionChanged})
	s.emit(Event{Kind: EventMovesChanged})
	s.emit(Event{Kind: EventTimeChanged})

	return nil
}

// SelectTile handles a tap on cell (row, col):
//
//   - no selection yet: the cell becomes the selection
//   - same cell again: the selection is cleared
//   - orthogonal neighbor of the selection: the tiles swap, the move
//     counter advances and the win condition is evaluated
//   - anything else: the selection moves to the tapped cell
//
// Taps outside the playing phase or outside the board are no-ops.
func (s *Session) SelectTile(row, col int) {
	if s.phase != PhasePlaying {
		return
	}
	size := s.grid.Size()
	if row < 0 || row >= size || col < 0 || col >= size {
		return
	}

	cell := board.Cell{Row: row, Col: col}

	switch {
	case s.selection == nil:
		s.selection = &cell
		s.emit(Event{Kind: EventSelectionChanged})

	case *s.selection == cell:
		s.selection = nil
		s.emit(Event{Kind: EventSelectionChanged})

	case board.Adjacent(*s.selection, cell):
		s.grid.Swap(*s.selection, cell)
		s.selection = nil
		s.moves++
		s.emit(Event{Kind: EventGridChanged})
		s.emit(Event{Kind: EventSelectionChanged})
		s.emit(Event{Kind: EventMovesChanged})
		if s.grid.Solved() {
			s.win()
		}

	default:
		s.selection = &cell
		s.emit(Event{Kind: EventSelectionChanged})
	}
}

// win records the result and moves to the won phase.
func (s *Session) win() {
	s.ledger.RecordWin(scores.SizeKey(s.gridSize), scores.Result{
		Name:          s.playerName,
		Moves:         s.moves,
		TimeRemaining: s.timeLeft,
		Date:          s.now(),
	})
	s.setPhase(PhaseWon)
	s.emit(Event{Kind: EventPlaySound, Sound: SoundVictory})
}

// Tick advances the session by one second. During the splash it counts
// down to the menu; during play it decrements the clock and fires the
// timeout exactly once when it reaches zero. Ticks in any other phase
// are ignored, so a stale tick arriving after a transition cannot
// decrement or double-fire.
func (s *Session) Tick() {
	switch s.phase {
	case PhaseSplash:
		s.splashTicks++
		if s.splashTicks >= s.opts.SplashSeconds {
			s.setPhase(PhaseMenu)
		}

	case PhasePlaying:
		s.timeLeft--
		s.emit(Event{Kind: EventTimeChanged})
		if s.timeLeft <= 0 {
			s.timeLeft = 0
			s.setPhase(PhaseGameOver)
			s.emit(Event{Kind: EventPlaySound, Sound: SoundGameOver})
		}
	}
}

// GiveUp abandons the current game and returns to the menu with no
// score recorded. Only legal while playing.
func (s *Session) GiveUp() {
	if s.phase != PhasePlaying {
		return
	}
	s.setPhase(PhaseMenu)
	s.emit(Event{Kind: EventPlaySound, Sound: SoundGameOver})
}

// Acknowledge dismisses the won or game-over screen back to the menu.
func (s *Session) Acknowledge() {
	if s.phase != PhaseWon && s.phase != PhaseGameOver {
		return
	}
	s.setPhase(PhaseMenu)
}
