package mines

// GameStateType represents the current game state for snapshots.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
)

// Snapshot captures the complete session state for determinism testing and
// replay.
type Snapshot struct {
	Tick        uint64
	Width       int
	Height      int
	Mines       int
	MinesPlaced bool
	CursorX     int
	CursorY     int
	Uncovered   int
	Flagged     int
	Elapsed     int
	State       GameStateType
}

// Snapshot returns the current session snapshot for determinism verification.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch s.board.Status() {
	case Won:
		state = StateWin
	case Lost:
		state = StateGameOver
	}

	return Snapshot{
		Tick:        s.tick,
		Width:       s.board.Width(),
		Height:      s.board.Height(),
		Mines:       s.board.MineCount(),
		MinesPlaced: s.board.MinesPlaced(),
		CursorX:     s.cursorX,
		CursorY:     s.cursorY,
		Uncovered:   s.board.UncoveredCount(),
		Flagged:     s.board.FlagCount(),
		Elapsed:     s.Elapsed(),
		State:       state,
	}
}
