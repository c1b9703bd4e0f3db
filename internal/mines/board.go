// Package mines implements the minesweeper board engine: mine placement,
// neighbor counting, the uncover cascade, and win/loss tracking. The engine
// performs no I/O and has no terminal dependency; the platform layer drives
// it through a small synchronous operation set.
package mines

import (
	"errors"
	"fmt"
	"math/rand"
)

// CellState describes the visible state of a single board cell.
type CellState uint8

const (
	Covered CellState = iota
	Uncovered
	Flagged
	Exploded
)

// String returns a human-readable name for the cell state.
func (s CellState) String() string {
	switch s {
	case Covered:
		return "covered"
	case Uncovered:
		return "uncovered"
	case Flagged:
		return "flagged"
	case Exploded:
		return "exploded"
	default:
		return "unknown"
	}
}

// Cell is a single board square. Neighbors is meaningful only after
// PlaceMines has run; before that it is zero and not consulted.
type Cell struct {
	Mine      bool
	State     CellState
	Neighbors int // Count of adjacent mines, 0..8
}

// Status describes the overall game outcome.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// ErrInvalidDimensions is returned by NewBoard when the requested board
// shape or mine count cannot produce a playable game.
var ErrInvalidDimensions = errors.New("mines: invalid board dimensions")

// DefaultMineCount returns the mine count used when none is requested
// explicitly: one sixth of the board area.
func DefaultMineCount(width, height int) int {
	return width * height / 6
}

// Board is a rectangular minesweeper grid. It owns all cells exclusively;
// callers address them only by (x, y) coordinate. A Board has exactly one
// writer and is not safe for concurrent use.
type Board struct {
	width       int
	height      int
	mineCount   int
	cells       []Cell // Row-major, index y*width+x
	minesPlaced bool
	uncovered   int // Cells in state Uncovered
	flagged     int // Cells in state Flagged
	exploded    bool
}

// NewBoard creates a board with all cells covered and no mines placed.
// Mines are placed later, on the first reveal, so the first move is always
// safe. Returns ErrInvalidDimensions unless width > 0, height > 0 and
// 0 <= mineCount < width*height.
func NewBoard(width, height, mineCount int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if mineCount < 0 || mineCount >= width*height {
		return nil, fmt.Errorf("%w: %d mines on a %dx%d board", ErrInvalidDimensions, mineCount, width, height)
	}

	return &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		cells:     make([]Cell, width*height),
	}, nil
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// MineCount returns the number of mines the board was created with.
func (b *Board) MineCount() int { return b.mineCount }

// MinesPlaced reports whether the first reveal has already placed mines.
func (b *Board) MinesPlaced() bool { return b.minesPlaced }

// UncoveredCount returns the number of cells currently uncovered.
func (b *Board) UncoveredCount() int { return b.uncovered }

// FlagCount returns the number of cells currently flagged.
func (b *Board) FlagCount() int { return b.flagged }

// RemainingFlags returns the mine count minus the flags placed, which is
// the status-line "unflagged mines" figure. May go negative if the player
// over-flags.
func (b *Board) RemainingFlags() int { return b.mineCount - b.flagged }

// InBounds reports whether (x, y) addresses a cell on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// CellAt returns a copy of the cell at (x, y).
// Panics on out-of-bounds coordinates; the caller owns bounds checking.
func (b *Board) CellAt(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

func (b *Board) index(x, y int) int {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("mines: cell (%d, %d) out of bounds on %dx%d board", x, y, b.width, b.height))
	}
	return y*b.width + x
}

// PlaceMines distributes the board's mines uniformly at random over all
// cells except (avoidX, avoidY), so the first reveal can never explode.
// Uses a partial Fisher-Yates shuffle of the candidate indices, which is
// bounded and uniform at any mine density (unlike rejection sampling, which
// degrades as free cells run out). Neighbor counts are computed immediately
// afterwards.
//
// Calling PlaceMines twice, or on a board whose mines are already placed,
// is a caller-contract violation and panics.
func (b *Board) PlaceMines(rng *rand.Rand, avoidX, avoidY int) {
	if b.minesPlaced {
		panic("mines: PlaceMines called twice on the same board")
	}
	avoid := b.index(avoidX, avoidY)

	candidates := make([]int, 0, len(b.cells)-1)
	for i := range b.cells {
		if i != avoid {
			candidates = append(candidates, i)
		}
	}

	// Partial shuffle: after i swaps, candidates[:i] holds a uniform sample.
	for i := 0; i < b.mineCount; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		b.cells[candidates[i]].Mine = true
	}

	b.minesPlaced = true
	b.computeNeighborCounts()
}

// computeNeighborCounts sets Neighbors on every cell to the number of mines
// among its up-to-8 adjacent cells. Off-board neighbors are excluded, not
// wrapped.
func (b *Board) computeNeighborCounts() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			count := 0
			b.eachNeighbor(x, y, func(nx, ny int) {
				if b.cells[ny*b.width+nx].Mine {
					count++
				}
			})
			b.cells[y*b.width+x].Neighbors = count
		}
	}
}

// eachNeighbor calls fn for every in-bounds cell adjacent to (x, y).
func (b *Board) eachNeighbor(x, y int, fn func(nx, ny int)) {
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if b.InBounds(nx, ny) {
				fn(nx, ny)
			}
		}
	}
}

// point is a worklist entry for the reveal cascade.
type point struct {
	x, y int
}

// Reveal uncovers the cell at (x, y) and resolves the full cascade before
// returning. The behavior per cell state:
//
//   - Covered mine: the cell explodes, ending the game. No cascade.
//   - Covered safe cell: the cell is uncovered; if it has no adjacent mines
//     every neighbor is revealed in turn, flooding the whole zero region and
//     stopping at its numbered boundary.
//   - Uncovered cell: a chord. When the number of flagged neighbors equals
//     the cell's mine count, every still-covered neighbor is revealed.
//     Only the flag count is checked, not flag correctness, so a misplaced
//     flag can detonate a mine here; that is standard chording.
//   - Flagged or exploded cell: no-op. Flags protect cells from reveal.
//
// The cascade is driven by an explicit worklist rather than recursion, so
// stack depth stays constant on large boards. Each cell leaves the Covered
// state at most once, which bounds the whole operation by the grid size.
//
// Mines must already be placed; revealing before placement is a
// caller-contract violation and panics.
func (b *Board) Reveal(x, y int) {
	if !b.minesPlaced {
		panic("mines: Reveal called before PlaceMines")
	}

	work := []point{{x, y}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]

		c := &b.cells[b.index(p.x, p.y)]
		switch c.State {
		case Covered:
			if c.Mine {
				c.State = Exploded
				b.exploded = true
				continue
			}
			c.State = Uncovered
			b.uncovered++
			if c.Neighbors == 0 {
				// A zero cell has no adjacent mines, so flooding every
				// neighbor is safe.
				b.eachNeighbor(p.x, p.y, func(nx, ny int) {
					work = append(work, point{nx, ny})
				})
			}

		case Uncovered:
			flags := 0
			b.eachNeighbor(p.x, p.y, func(nx, ny int) {
				if b.cells[ny*b.width+nx].State == Flagged {
					flags++
				}
			})
			if flags != c.Neighbors {
				continue
			}
			b.eachNeighbor(p.x, p.y, func(nx, ny int) {
				if b.cells[ny*b.width+nx].State == Covered {
					work = append(work, point{nx, ny})
				}
			})

		case Flagged, Exploded:
			// No-op.
		}
	}
}

// ToggleFlag flips the flag on a covered cell: Covered becomes Flagged and
// Flagged becomes Covered. Uncovered and exploded cells are unaffected.
func (b *Board) ToggleFlag(x, y int) {
	c := &b.cells[b.index(x, y)]
	switch c.State {
	case Covered:
		c.State = Flagged
		b.flagged++
	case Flagged:
		c.State = Covered
		b.flagged--
	}
}

// Status returns Lost if any cell has exploded, Won if every safe cell is
// uncovered and nothing exploded, and InProgress otherwise.
func (b *Board) Status() Status {
	switch {
	case b.exploded:
		return Lost
	case b.uncovered == b.width*b.height-b.mineCount:
		return Won
	default:
		return InProgress
	}
}
