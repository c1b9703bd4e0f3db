package mines

import (
	"fmt"

	"github.com/akovalev/minetui/internal/core"
)

// Theme holds the glyphs used for the three non-numeric cell renditions.
type Theme struct {
	Covered rune
	Flag    rune
	Mine    rune
}

// DefaultTheme returns the classic terminal glyphs.
func DefaultTheme() Theme {
	return Theme{Covered: '#', Flag: 'F', Mine: '*'}
}

// Render draws the board, HUD, and status line into the screen buffer.
// Cells are spaced two columns apart so the grid reads as square-ish in a
// terminal font.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	s.renderHUD(dst)

	gridW := 2*s.board.Width() + 1
	gridH := s.board.Height()
	hudHeight := 2
	if dst.Width() < gridW+2 || dst.Height() < gridH+hudHeight+4 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue")
		return
	}

	// Boxed frame around the grid, below the HUD.
	frame := core.NewRect((dst.Width()-gridW-2)/2, hudHeight, gridW+2, gridH+2)
	dst.DrawBox(frame)

	offsetX := frame.X + 1
	offsetY := frame.Y + 1

	for y := 0; y < s.board.Height(); y++ {
		for x := 0; x < s.board.Width(); x++ {
			glyph, color := s.theme.cellGlyph(s.board.CellAt(x, y))
			dst.SetWithColor(offsetX+2*x+1, offsetY+y, glyph, color)
		}
	}

	// Cursor brackets around the selected cell.
	dst.SetWithColor(offsetX+2*s.cursorX, offsetY+s.cursorY, '[', core.ColorBrightYellow)
	dst.SetWithColor(offsetX+2*s.cursorX+2, offsetY+s.cursorY, ']', core.ColorBrightYellow)

	s.renderStatusLine(dst, frame.Bottom())
}

// cellGlyph maps a cell to its display rune and color.
func (t Theme) cellGlyph(c Cell) (rune, core.Color) {
	switch c.State {
	case Covered:
		return t.Covered, core.ColorGray
	case Flagged:
		return t.Flag, core.ColorRed
	case Exploded:
		return t.Mine, core.ColorBrightRed
	case Uncovered:
		if c.Neighbors == 0 {
			return ' ', core.ColorDefault
		}
		return rune('0' + c.Neighbors), core.NumberColor(c.Neighbors)
	default:
		return '?', core.ColorDefault
	}
}

// renderHUD draws the top status bar and separator.
func (s *Session) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Minesweeper - %dx%d, %d mines  Time: %ds",
		s.board.Width(), s.board.Height(), s.board.MineCount(), s.Elapsed())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderStatusLine draws the line below the grid: the unflagged-mine count
// while playing, and the outcome once the game ends.
func (s *Session) renderStatusLine(dst *core.Screen, y int) {
	switch s.board.Status() {
	case Lost:
		dst.DrawTextCentered(y, "Game Over")
		dst.DrawTextCentered(y+1, "Press N for a new game, Q to quit")
	case Won:
		dst.DrawTextCentered(y, fmt.Sprintf("You Win!  (%ds)", s.Elapsed()))
		dst.DrawTextCentered(y+1, "Press N for a new game, Q to quit")
	default:
		dst.DrawTextCentered(y, fmt.Sprintf("Unflagged Mines: %d", s.board.RemainingFlags()))
	}
}
