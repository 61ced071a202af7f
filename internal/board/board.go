// internal/board/board.go
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gammazero/deque"
	"github.com/zyedidia/generic/mapset"
)

var (
	ErrInvalidSize   = errors.New("board size must be positive")
	ErrInvalidMines  = errors.New("invalid mine count")
	ErrAlreadyPlaced = errors.New("mines already placed")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
)

// New returns a size×size board with no mines, flags or revealed cells.
func New(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) index(row, col int) int {
	return row*b.size + col
}

// Cell returns a copy of the cell at (row, col). Out-of-bounds yields a zero Cell.
func (b *Board) Cell(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Cell{}
	}
	return b.cells[b.index(row, col)]
}

// MinesPlaced reports whether PlaceMines has run.
func (b *Board) MinesPlaced() bool {
	return b.placed
}

// MineCount returns the number of mines on the board (0 before placement).
func (b *Board) MineCount() int {
	return b.mines
}

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int {
	return b.flags
}

// Neighbors returns the up to 8 on-board cells around (row, col).
func (b *Board) Neighbors(row, col int) []Point {
	points := make([]Point, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if b.InBounds(r, c) {
				points = append(points, Point{r, c})
			}
		}
	}
	return points
}

// AdjacentMines counts mines in the 8-neighborhood of (row, col).
func (b *Board) AdjacentMines(row, col int) int {
	count := 0
	for _, n := range b.Neighbors(row, col) {
		if b.cells[b.index(n.Row, n.Col)].HasMine {
			count++
		}
	}
	return count
}

// PlaceMines puts count mines on distinct cells chosen uniformly at random,
// never on exclude. Valid counts are [0, size*size-1].
func (b *Board) PlaceMines(count int, exclude Point, rng Sampler) error {
	if err := b.checkPlacement(count, exclude); err != nil {
		return err
	}
	excluded := b.index(exclude.Row, exclude.Col)
	// Sample from the size²-1 remaining cells and shift past the excluded one.
	for _, i := range rng.SampleIndices(len(b.cells)-1, count) {
		if i >= excluded {
			i++
		}
		b.cells[i].HasMine = true
	}
	b.mines = count
	b.placed = true
	return nil
}

// PlaceMinesRejection is the rejection-sampling variant: draw random cells,
// skip duplicates and the excluded cell, stop at count distinct mines.
func (b *Board) PlaceMinesRejection(count int, exclude Point, rng Sampler) error {
	if err := b.checkPlacement(count, exclude); err != nil {
		return err
	}
	placed := 0
	for placed < count {
		row, col := rng.Intn(b.size), rng.Intn(b.size)
		if row == exclude.Row && col == exclude.Col {
			continue
		}
		cell := &b.cells[b.index(row, col)]
		if cell.HasMine {
			continue
		}
		cell.HasMine = true
		placed++
	}
	b.mines = count
	b.placed = true
	return nil
}

func (b *Board) checkPlacement(count int, exclude Point) error {
	if b.placed {
		return ErrAlreadyPlaced
	}
	if count < 0 || count > len(b.cells)-1 {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidMines, count, len(b.cells)-1)
	}
	if !b.InBounds(exclude.Row, exclude.Col) {
		return fmt.Errorf("%w: exclude (%d, %d)", ErrOutOfBounds, exclude.Row, exclude.Col)
	}
	return nil
}

// Reveal opens (row, col). It does nothing for out-of-bounds, revealed or
// flagged cells. A mine is revealed alone and reported through hitMine.
// Otherwise cells are opened breadth-first: every opened cell with no
// adjacent mines queues its hidden, unflagged neighbors. Numbered cells are
// opened but not expanded.
func (b *Board) Reveal(row, col int) (revealed []Point, hitMine bool) {
	if !b.InBounds(row, col) {
		return nil, false
	}
	target := &b.cells[b.index(row, col)]
	if target.Revealed || target.Flagged {
		return nil, false
	}
	if target.HasMine {
		target.Revealed = true
		return []Point{{row, col}}, true
	}

	var queue deque.Deque[Point]
	queue.PushBack(Point{row, col})
	for queue.Len() != 0 {
		p := queue.PopFront()
		cell := &b.cells[b.index(p.Row, p.Col)]
		if cell.Revealed || cell.Flagged || cell.HasMine {
			continue
		}
		cell.Revealed = true
		revealed = append(revealed, p)

		if b.AdjacentMines(p.Row, p.Col) != 0 {
			continue
		}
		for _, n := range b.Neighbors(p.Row, p.Col) {
			nc := b.cells[b.index(n.Row, n.Col)]
			if !nc.Revealed && !nc.Flagged {
				queue.PushBack(n)
			}
		}
	}
	return revealed, false
}

// ToggleFlag flips the flag on a hidden cell. ok is false when nothing changed.
func (b *Board) ToggleFlag(row, col int) (flagged, ok bool) {
	if !b.InBounds(row, col) {
		return false, false
	}
	cell := &b.cells[b.index(row, col)]
	if cell.Revealed {
		return false, false
	}
	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		b.flags++
	} else {
		b.flags--
	}
	return cell.Flagged, true
}

// Mines returns the positions of every mine in row-major order.
func (b *Board) Mines() []Point {
	points := make([]Point, 0, b.mines)
	for i, c := range b.cells {
		if c.HasMine {
			points = append(points, Point{i / b.size, i % b.size})
		}
	}
	return points
}

// FlagsMatchMines reports whether the flagged set equals the mine set.
func (b *Board) FlagsMatchMines() bool {
	if b.flags != b.mines {
		return false
	}
	mines := mapset.New[Point]()
	flags := mapset.New[Point]()
	for i, c := range b.cells {
		p := Point{i / b.size, i % b.size}
		if c.HasMine {
			mines.Put(p)
		}
		if c.Flagged {
			flags.Put(p)
		}
	}
	if mines.Size() != flags.Size() {
		return false
	}
	match := true
	mines.Each(func(p Point) {
		if !flags.Has(p) {
			match = false
		}
	})
	return match
}

// RevealedCount returns how many cells are open.
func (b *Board) RevealedCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Revealed {
			n++
		}
	}
	return n
}

// String draws the board for debugging and test output:
// "-" hidden, "F" flag, "*" revealed mine, "." empty, digits for counts.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			c := b.cells[b.index(row, col)]
			switch {
			case c.Revealed && c.HasMine:
				sb.WriteByte('*')
			case c.Revealed:
				if n := b.AdjacentMines(row, col); n == 0 {
					sb.WriteByte('.')
				} else {
					sb.WriteByte(byte('0' + n))
				}
			case c.Flagged:
				sb.WriteByte('F')
			default:
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
