package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tileswap/internal/board"
	"github.com/vovakirdan/tileswap/internal/scores"
)

// newMenuSession returns a session ticked past the splash into the menu.
func newMenuSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(DefaultOptions(), rand.New(rand.NewSource(1)), scores.Load(nil, nil))
	for s.Phase() == PhaseSplash {
		s.Tick()
	}
	if s.Phase() != PhaseMenu {
		t.Fatalf("expected menu after splash, got %v", s.Phase())
	}
	s.Events() // drain splash/menu noise
	return s
}

// startPlaying puts the session into a 3×3 game for player "Ava".
func startPlaying(t *testing.T) *Session {
	t.Helper()
	s := newMenuSession(t)
	if err := s.StartGame("Ava"); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	s.Events()
	return s
}

// setGrid replaces the session's grid, preserving the target (white-box
// helper so win scenarios don't depend on the shuffle).
func setGrid(s *Session, numbers [][]int) {
	size := len(numbers)
	g := make(board.Grid, size)
	for i := 0; i < size; i++ {
		g[i] = make([]board.Tile, size)
		for j := 0; j < size; j++ {
			g[i][j] = board.Tile{Number: numbers[i][j]}
		}
	}
	s.grid = g
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func findSound(events []Event) (Sound, bool) {
	for _, e := range events {
		if e.Kind == EventPlaySound {
			return e.Sound, true
		}
	}
	return "", false
}

func TestSplashAdvancesToMenuAfterTicks(t *testing.T) {
	s := NewSession(DefaultOptions(), rand.New(rand.NewSource(1)), nil)

	if s.Phase() != PhaseSplash {
		t.Fatalf("new session phase = %v, want splash", s.Phase())
	}

	s.Tick()
	if s.Phase() != PhaseSplash {
		t.Errorf("phase after 1 tick = %v, want splash", s.Phase())
	}

	s.Tick()
	if s.Phase() != PhaseMenu {
		t.Errorf("phase after 2 ticks = %v, want menu", s.Phase())
	}
	if !hasEvent(s.Events(), EventPhaseChanged) {
		t.Error("splash->menu transition should emit a phase change")
	}
}

func TestStartGameRejectsEmptyName(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces only", "   "},
		{"tab and newline", "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newMenuSession(t)
			if err := s.StartGame(tt.input); err != ErrEmptyName {
				t.Errorf("StartGame(%q) = %v, want ErrEmptyName", tt.input, err)
			}
			if s.Phase() != PhaseMenu {
				t.Errorf("phase = %v, rejected start must stay in menu", s.Phase())
			}
			if !hasEvent(s.Events(), EventValidationFailed) {
				t.Error("rejected start should emit a validation event")
			}
		})
	}
}

func TestStartGameTrimsName(t *testing.T) {
	s := newMenuSession(t)
	if err := s.StartGame("  Ava  "); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	if s.PlayerName() != "Ava" {
		t.Errorf("PlayerName = %q, want %q", s.PlayerName(), "Ava")
	}
}

func TestStartGameInitializesPlayingState(t *testing.T) {
	s := newMenuSession(t)
	if err := s.StartGame("Ava"); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v, want playing", s.Phase())
	}
	if s.Moves() != 0 {
		t.Errorf("moves = %d, want 0", s.Moves())
	}
	if s.TimeLeft() != 30 {
		t.Errorf("timeLeft = %d, want 30 for a 3x3 game", s.TimeLeft())
	}

	snap := s.Snapshot()
	if snap.Grid.Size() != 3 {
		t.Errorf("grid size = %d, want 3", snap.Grid.Size())
	}
	if snap.Selection != nil {
		t.Error("a new game must start with no selection")
	}

	events := s.Events()
	for _, kind := range []EventKind{EventPhaseChanged, EventGridChanged, EventMovesChanged, EventTimeChanged} {
		if !hasEvent(events, kind) {
			t.Errorf("start should emit %v", kind)
		}
	}
}

func TestTimeLimitsPerSize(t *testing.T) {
	tests := []struct {
		size  int
		limit int
	}{
		{3, 30},
		{4, 60},
		{5, 90},
		{6, 120},
	}

	for _, tt := range tests {
		s := newMenuSession(t)
		s.SetGridSize(tt.size)
		if err := s.StartGame("Ava"); err != nil {
			t.Fatalf("StartGame failed: %v", err)
		}
		if s.TimeLeft() != tt.limit {
			t.Errorf("size %d: timeLeft = %d, want %d", tt.size, s.TimeLeft(), tt.limit)
		}
	}
}

func TestSetGridSizeValidation(t *testing.T) {
	s := newMenuSession(t)

	s.SetGridSize(5)
	if s.GridSize() != 5 {
		t.Errorf("GridSize = %d, want 5", s.GridSize())
	}

	for _, bad := range []int{0, 2, 7, -1} {
		s.SetGridSize(bad)
		if s.GridSize() != 5 {
			t.Errorf("unsupported size %d changed the grid size to %d", bad, s.GridSize())
		}
	}

	// Size changes are menu-only.
	if err := s.StartGame("Ava"); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	s.SetGridSize(3)
	if s.GridSize() != 5 {
		t.Error("SetGridSize must be ignored while playing")
	}
}

func TestSelectThenDeselect(t *testing.T) {
	s := startPlaying(t)

	s.SelectTile(1, 1)
	if snap := s.Snapshot(); snap.Selection == nil || *snap.Selection != (board.Cell{Row: 1, Col: 1}) {
		t.Fatalf("selection = %v, want {1 1}", snap.Selection)
	}
	if !hasEvent(s.Events(), EventSelectionChanged) {
		t.Error("selecting should emit a selection change")
	}

	s.SelectTile(1, 1)
	if snap := s.Snapshot(); snap.Selection != nil {
		t.Errorf("selection after tapping same cell = %v, want nil", snap.Selection)
	}
	if s.Moves() != 0 {
		t.Errorf("moves = %d, deselect must not count as a move", s.Moves())
	}
}

func TestNonAdjacentTapMovesSelection(t *testing.T) {
	s := startPlaying(t)
	before := s.Snapshot().Grid

	s.SelectTile(0, 0)
	s.SelectTile(2, 2)

	snap := s.Snapshot()
	if snap.Selection == nil || *snap.Selection != (board.Cell{Row: 2, Col: 2}) {
		t.Errorf("selection = %v, want {2 2}", snap.Selection)
	}
	if s.Moves() != 0 {
		t.Errorf("moves = %d, non-adjacent tap must not swap", s.Moves())
	}
	for i := range before {
		for j := range before[i] {
			if snap.Grid[i][j] != before[i][j] {
				t.Fatalf("grid mutated at (%d,%d) without an adjacent swap", i, j)
			}
		}
	}
}

func TestDiagonalTapDoesNotSwap(t *testing.T) {
	s := startPlaying(t)

	s.SelectTile(0, 0)
	s.SelectTile(1, 1)

	if s.Moves() != 0 {
		t.Errorf("moves = %d, diagonal taps must not swap", s.Moves())
	}
	snap := s.Snapshot()
	if snap.Selection == nil || *snap.Selection != (board.Cell{Row: 1, Col: 1}) {
		t.Errorf("selection = %v, want the new cell {1 1}", snap.Selection)
	}
}

func TestAdjacentSwapCountsOneMove(t *testing.T) {
	s := startPlaying(t)
	setGrid(s, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{8, 7, 9}, // a swap in the top row won't solve this
	})

	before := s.Snapshot().Grid

	s.SelectTile(0, 0)
	s.SelectTile(0, 1)
	s.Events()

	if s.Moves() != 1 {
		t.Fatalf("moves = %d, want 1 after one swap", s.Moves())
	}

	snap := s.Snapshot()
	if snap.Grid[0][0] != before[0][1] || snap.Grid[0][1] != before[0][0] {
		t.Error("adjacent tap must swap the two tiles")
	}
	if snap.Selection != nil {
		t.Error("selection must clear after a swap")
	}
}

func TestWinningSwapRecordsResult(t *testing.T) {
	ledger := scores.Load(nil, nil)
	s := NewSession(DefaultOptions(), rand.New(rand.NewSource(1)), ledger)
	for s.Phase() == PhaseSplash {
		s.Tick()
	}
	if err := s.StartGame("Ava"); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	s.Tick() // 30 -> 29
	s.Events()

	setGrid(s, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 9, 8}, // one adjacent swap from solved
	})

	s.SelectTile(2, 1)
	s.SelectTile(2, 2)

	if s.Phase() != PhaseWon {
		t.Fatalf("phase = %v, want won", s.Phase())
	}

	events := s.Events()
	if !hasEvent(events, EventPhaseChanged) {
		t.Error("win should emit a phase change")
	}
	if sound, ok := findSound(events); !ok || sound != SoundVictory {
		t.Errorf("win should request the victory sound, got %q", sound)
	}

	top := ledger.Top(scores.SizeKey(3))
	if len(top) != 1 {
		t.Fatalf("ledger has %d results, want 1", len(top))
	}
	r := top[0]
	if r.Name != "Ava" || r.Moves != 1 || r.TimeRemaining != 29 {
		t.Errorf("recorded result = %+v, want name Ava, 1 move, 29s remaining", r)
	}
}

func TestNearSolvedGridIsNotWon(t *testing.T) {
	s := startPlaying(t)
	setGrid(s, [][]int{
		{2, 1, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	// Swap a solved pair apart again; grid is still not in order.
	s.SelectTile(1, 0)
	s.SelectTile(1, 1)

	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v, near-solved grid must not win", s.Phase())
	}
}

func TestWinOnlyEvaluatedAfterSwap(t *testing.T) {
	s := startPlaying(t)
	// Force an already-solved grid; mere selection must not trigger a win.
	setGrid(s, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	s.SelectTile(0, 0)
	s.SelectTile(0, 0)

	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v, selection alone must not evaluate the win", s.Phase())
	}
}

func TestClockTimeoutFiresOnce(t *testing.T) {
	s := startPlaying(t)
	s.timeLeft = 1
	s.Events()

	s.Tick()
	if s.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game over at zero", s.Phase())
	}
	if s.TimeLeft() != 0 {
		t.Errorf("timeLeft = %d, want 0", s.TimeLeft())
	}
	if sound, ok := findSound(s.Events()); !ok || sound != SoundGameOver {
		t.Errorf("timeout should request the game-over sound, got %q", sound)
	}

	// A stale second tick must not decrement or fire again.
	s.Tick()
	if s.TimeLeft() != 0 {
		t.Errorf("timeLeft after stale tick = %d, want 0", s.TimeLeft())
	}
	if events := s.Events(); len(events) != 0 {
		t.Errorf("stale tick emitted %d events, want none", len(events))
	}
}

func TestGiveUpReturnsToMenuWithoutScore(t *testing.T) {
	ledger := scores.Load(nil, nil)
	s := NewSession(DefaultOptions(), rand.New(rand.NewSource(1)), ledger)
	for s.Phase() == PhaseSplash {
		s.Tick()
	}
	if err := s.StartGame("Ava"); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	s.Events()

	s.GiveUp()
	if s.Phase() != PhaseMenu {
		t.Errorf("phase = %v, want menu after giving up", s.Phase())
	}
	if sound, ok := findSound(s.Events()); !ok || sound != SoundGameOver {
		t.Errorf("give up should request the game-over sound, got %q", sound)
	}
	if top := ledger.Top(scores.SizeKey(3)); len(top) != 0 {
		t.Errorf("give up recorded a score: %+v", top)
	}
}

func TestAcknowledgeReturnsToMenu(t *testing.T) {
	s := startPlaying(t)
	s.timeLeft = 1
	s.Tick()
	if s.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", s.Phase())
	}

	s.Acknowledge()
	if s.Phase() != PhaseMenu {
		t.Errorf("phase = %v, want menu after acknowledge", s.Phase())
	}
}

func TestCommandsOutsideTheirPhaseAreNoOps(t *testing.T) {
	s := newMenuSession(t)

	// Tile taps and give-up do nothing in the menu.
	s.SelectTile(0, 0)
	s.GiveUp()
	s.Acknowledge()
	if s.Phase() != PhaseMenu {
		t.Errorf("phase = %v, want menu", s.Phase())
	}
	if events := s.Events(); len(events) != 0 {
		t.Errorf("illegal commands emitted %d events, want none", len(events))
	}

	// A second start while playing is ignored.
	if err := s.StartGame("Ava"); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	s.SelectTile(0, 0)
	moves := s.Moves()
	if err := s.StartGame("Bo"); err != nil {
		t.Errorf("StartGame while playing = %v, want nil no-op", err)
	}
	if s.Moves() != moves || s.PlayerName() != "Ava" {
		t.Error("StartGame while playing must not reset the game")
	}
}

func TestOutOfBoundsTapIsIgnored(t *testing.T) {
	s := startPlaying(t)

	for _, cell := range []board.Cell{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 3, Col: 0}, {Row: 0, Col: 3}} {
		s.SelectTile(cell.Row, cell.Col)
	}

	if snap := s.Snapshot(); snap.Selection != nil {
		t.Errorf("selection = %v, out-of-bounds taps must be ignored", snap.Selection)
	}
}

func TestTicksDoNotRunInMenuOrEndScreens(t *testing.T) {
	s := newMenuSession(t)
	s.Tick()
	s.Tick()
	if s.Phase() != PhaseMenu {
		t.Errorf("phase = %v, menu ticks must not transition", s.Phase())
	}
	if events := s.Events(); len(events) != 0 {
		t.Errorf("menu tick emitted %d events", len(events))
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := startPlaying(t)

	snap := s.Snapshot()
	snap.Grid[0][0].Number = 99

	if s.Snapshot().Grid[0][0].Number == 99 {
		t.Error("mutating a snapshot must not change the session grid")
	}
}
