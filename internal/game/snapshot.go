package game

import "github.com/vovakirdan/tileswap/internal/board"

// Snapshot is the render-ready view of the session. The presentation
// layer reads it after draining events; mutating the copy has no effect
// on the session.
type Snapshot struct {
	Phase      Phase
	GridSize   int
	PlayerName string
	Grid       board.Grid
	Selection  *board.Cell
	Moves      int
	TimeLeft   int
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.phase,
		GridSize:   s.gridSize,
		PlayerName: s.playerName,
		Moves:      s.moves,
		TimeLeft:   s.timeLeft,
	}
	if s.grid != nil {
		snap.Grid = s.grid.Clone()
	}
	if s.selection != nil {
		cell := *s.selection
		snap.Selection = &cell
	}
	return snap
}
