package mines

import (
	"fmt"
	"math/rand"

	"github.com/akovalev/minetui/internal/core"
)

// Params are the board parameters a session plays with.
type Params struct {
	Width  int
	Height int
	Mines  int // 0 means derive via DefaultMineCount
}

// Normalize fills in the derived mine count and validates the parameters
// against the board constraints.
func (p Params) Normalize() (Params, error) {
	if p.Mines == 0 {
		p.Mines = DefaultMineCount(p.Width, p.Height)
	}
	if _, err := NewBoard(p.Width, p.Height, p.Mines); err != nil {
		return p, err
	}
	return p, nil
}

// Session owns one board plus the cursor and clock around it, and adapts the
// engine to the platform's Game contract. The engine itself stays a pure
// value the session calls into; there is no package-level game state.
type Session struct {
	params Params
	theme  Theme
	rng    *rand.Rand
	board  *Board

	cursorX int
	cursorY int

	tick      uint64
	tickRate  int
	clockTick uint64 // Ticks elapsed since the first reveal

	screenW int
	screenH int
}

// NewSession creates a session for the given, already-normalized parameters.
func NewSession(params Params) *Session {
	return &Session{params: params, theme: DefaultTheme()}
}

// SetTheme replaces the cell glyphs used when rendering. Zero runes fall
// back to the defaults, so a partial theme is fine.
func (s *Session) SetTheme(t Theme) {
	def := DefaultTheme()
	if t.Covered == 0 {
		t.Covered = def.Covered
	}
	if t.Flag == 0 {
		t.Flag = def.Flag
	}
	if t.Mine == 0 {
		t.Mine = def.Mine
	}
	s.theme = t
}

// ID returns the game identifier used for storage keys.
func (s *Session) ID() string {
	return "minesweeper"
}

// Title returns the display name.
func (s *Session) Title() string {
	return "Minesweeper"
}

// Reset builds a fresh covered board. Mines are not placed until the first
// reveal, so whichever cell the player uncovers first is guaranteed safe.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.tickRate = cfg.TickRate
	if s.tickRate <= 0 {
		s.tickRate = core.DefaultConfig().TickRate
	}
	s.tick = 0
	s.clockTick = 0
	s.cursorX = 0
	s.cursorY = 0

	// Params were validated up front, so this cannot fail.
	board, err := NewBoard(s.params.Width, s.params.Height, s.params.Mines)
	if err != nil {
		panic(fmt.Sprintf("mines: session params invalid: %v", err))
	}
	s.board = board
}

// Board exposes the underlying board for rendering and tests.
func (s *Session) Board() *Board {
	return s.board
}

// Cursor returns the current cursor position.
func (s *Session) Cursor() (x, y int) {
	return s.cursorX, s.cursorY
}

// Step advances the session by one tick, applying any actions collected in
// the input frame. The reveal cascade runs to completion inside the call;
// no partial board state is ever observable.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.tick++

	if in.Has(core.ActionRestart) {
		s.Reset(core.RuntimeConfig{
			ScreenW:  s.screenW,
			ScreenH:  s.screenH,
			TickRate: s.tickRate,
			Seed:     s.rng.Int63(),
		})
		return core.StepResult{State: s.State()}
	}

	status := s.board.Status()
	if status == InProgress {
		s.moveCursor(in)
		if in.Has(core.ActionReveal) {
			if !s.board.MinesPlaced() {
				s.board.PlaceMines(s.rng, s.cursorX, s.cursorY)
			}
			s.board.Reveal(s.cursorX, s.cursorY)
		}
		if in.Has(core.ActionFlag) {
			s.board.ToggleFlag(s.cursorX, s.cursorY)
		}

		// The clock runs from the first reveal until the game ends.
		if s.board.MinesPlaced() && s.board.Status() == InProgress {
			s.clockTick++
		}
	}

	return core.StepResult{State: s.State()}
}

// moveCursor applies movement actions, clamped to the board.
func (s *Session) moveCursor(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		s.cursorY--
	}
	if in.Has(core.ActionDown) {
		s.cursorY++
	}
	if in.Has(core.ActionLeft) {
		s.cursorX--
	}
	if in.Has(core.ActionRight) {
		s.cursorX++
	}
	s.cursorX = core.Clamp(s.cursorX, 0, s.board.Width()-1)
	s.cursorY = core.Clamp(s.cursorY, 0, s.board.Height()-1)
}

// Elapsed returns whole seconds since the first reveal.
func (s *Session) Elapsed() int {
	return int(s.clockTick) / s.tickRate
}

// State returns the session state for the platform layer.
func (s *Session) State() core.GameState {
	status := s.board.Status()
	return core.GameState{
		GameOver: status != InProgress,
		Won:      status == Won,
		Elapsed:  s.Elapsed(),
	}
}
