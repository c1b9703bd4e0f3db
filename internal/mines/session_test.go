package mines

import (
	"strings"
	"testing"

	"github.com/akovalev/minetui/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     1,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestParamsNormalize(t *testing.T) {
	p, err := Params{Width: 12, Height: 6}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}
	if p.Mines != 12 {
		t.Errorf("derived mines = %d, want 12", p.Mines)
	}

	if _, err := (Params{Width: 0, Height: 6, Mines: 3}).Normalize(); err == nil {
		t.Error("Normalize() accepted zero width")
	}
	if _, err := (Params{Width: 3, Height: 3, Mines: 9}).Normalize(); err == nil {
		t.Error("Normalize() accepted a fully mined board")
	}
}

func TestSessionFirstRevealPlacesMines(t *testing.T) {
	s := NewSession(Params{Width: 9, Height: 9, Mines: 10})
	s.Reset(testConfig())

	if s.Board().MinesPlaced() {
		t.Fatal("mines placed before first reveal")
	}

	// Move the cursor, then reveal.
	s.Step(frame(core.ActionRight, core.ActionDown))
	s.Step(frame(core.ActionReveal))

	if !s.Board().MinesPlaced() {
		t.Fatal("mines not placed by first reveal")
	}
	if s.Board().CellAt(1, 1).Mine {
		t.Error("first-revealed cell is a mine")
	}
	if got := s.Board().CellAt(1, 1).State; got != Uncovered && got != Exploded {
		t.Errorf("revealed cell state = %v", got)
	}
	if got := s.Board().CellAt(1, 1).State; got == Exploded {
		t.Error("first reveal exploded")
	}
}

func TestSessionCursorClamped(t *testing.T) {
	s := NewSession(Params{Width: 3, Height: 2, Mines: 1})
	s.Reset(testConfig())

	for i := 0; i < 10; i++ {
		s.Step(frame(core.ActionLeft, core.ActionUp))
	}
	if x, y := s.Cursor(); x != 0 || y != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 0)", x, y)
	}

	for i := 0; i < 10; i++ {
		s.Step(frame(core.ActionRight, core.ActionDown))
	}
	if x, y := s.Cursor(); x != 2 || y != 1 {
		t.Errorf("cursor = (%d, %d), want (2, 1)", x, y)
	}
}

func TestSessionFlagAction(t *testing.T) {
	s := NewSession(Params{Width: 4, Height: 4, Mines: 2})
	s.Reset(testConfig())

	s.Step(frame(core.ActionFlag))
	if got := s.Board().CellAt(0, 0).State; got != Flagged {
		t.Errorf("cell state = %v, want Flagged", got)
	}
	s.Step(frame(core.ActionFlag))
	if got := s.Board().CellAt(0, 0).State; got != Covered {
		t.Errorf("cell state = %v, want Covered", got)
	}
}

func TestSessionOneByOneWin(t *testing.T) {
	s := NewSession(Params{Width: 1, Height: 1, Mines: 0})
	s.Reset(testConfig())

	result := s.Step(frame(core.ActionReveal))
	if !result.State.GameOver || !result.State.Won {
		t.Errorf("state = %+v, want won game over", result.State)
	}
	if snap := s.Snapshot(); snap.State != StateWin {
		t.Errorf("snapshot state = %q, want %q", snap.State, StateWin)
	}
}

func TestSessionRestart(t *testing.T) {
	s := NewSession(Params{Width: 5, Height: 5, Mines: 4})
	s.Reset(testConfig())

	s.Step(frame(core.ActionRight))
	s.Step(frame(core.ActionReveal))
	if !s.Board().MinesPlaced() {
		t.Fatal("mines not placed")
	}

	s.Step(frame(core.ActionRestart))
	if s.Board().MinesPlaced() {
		t.Error("restart kept the old mine layout")
	}
	if x, y := s.Cursor(); x != 0 || y != 0 {
		t.Errorf("cursor after restart = (%d, %d), want (0, 0)", x, y)
	}
	if got := s.Board().UncoveredCount(); got != 0 {
		t.Errorf("uncovered after restart = %d, want 0", got)
	}
}

func TestSessionClockStartsOnFirstReveal(t *testing.T) {
	cfg := testConfig()
	cfg.TickRate = 2
	s := NewSession(Params{Width: 20, Height: 20, Mines: 50})
	s.Reset(cfg)

	// Ticks before the first reveal do not advance the clock.
	for i := 0; i < 10; i++ {
		s.Step(frame())
	}
	if got := s.Elapsed(); got != 0 {
		t.Errorf("elapsed before first reveal = %d, want 0", got)
	}

	s.Step(frame(core.ActionReveal))
	for i := 0; i < 4; i++ {
		s.Step(frame())
	}
	if got := s.Elapsed(); got != 2 {
		t.Errorf("elapsed = %d, want 2 (5 ticks at rate 2)", got)
	}
}

func TestSessionRenderShowsStatusLine(t *testing.T) {
	s := NewSession(Params{Width: 5, Height: 5, Mines: 3})
	s.Reset(testConfig())

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Unflagged Mines: 3") {
		t.Errorf("render missing mine counter:\n%s", out)
	}
	if !strings.Contains(out, "Minesweeper") {
		t.Errorf("render missing HUD title:\n%s", out)
	}
	if !strings.Contains(out, "[") || !strings.Contains(out, "]") {
		t.Errorf("render missing cursor brackets:\n%s", out)
	}
	if !strings.ContainsRune(out, '┌') || !strings.ContainsRune(out, '┘') {
		t.Errorf("render missing grid frame:\n%s", out)
	}
}

func TestSessionSetTheme(t *testing.T) {
	s := NewSession(Params{Width: 3, Height: 3, Mines: 1})
	s.Reset(testConfig())

	// A partial theme keeps the defaults for unset glyphs.
	s.SetTheme(Theme{Covered: '░'})

	screen := core.NewScreen(40, 12)
	s.Render(screen)
	if !strings.ContainsRune(screen.String(), '░') {
		t.Errorf("render missing themed covered glyph:\n%s", screen.String())
	}

	s.Step(frame(core.ActionFlag))
	s.Render(screen)
	if !strings.ContainsRune(screen.String(), 'F') {
		t.Errorf("render missing default flag glyph:\n%s", screen.String())
	}
}

func TestSessionRenderTooSmall(t *testing.T) {
	s := NewSession(Params{Width: 30, Height: 20, Mines: 50})
	s.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 30, Seed: 1})

	screen := core.NewScreen(20, 10)
	s.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("render missing too-small notice:\n%s", screen.String())
	}
}
