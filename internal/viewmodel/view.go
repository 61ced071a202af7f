// internal/viewmodel/view.go
package viewmodel

import (
	"go-minesweeper/internal/session"
)

// DisplayState is what the player sees on a cell.
type DisplayState int

const (
	Hidden DisplayState = iota
	Flagged
	Revealed // open, Count holds the adjacent mine count
	Mine
)

func (d DisplayState) String() string {
	switch d {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "opened"
	case Mine:
		return "mine"
	default:
		return "unknown"
	}
}

// CellView is the display of one cell.
type CellView struct {
	State     DisplayState
	Count     int
	Detonated bool // the mine that ended the game
}

// Snapshot is the full display of a session at one moment.
type Snapshot struct {
	Size           int
	Cells          [][]CellView
	Outcome        session.Outcome
	Elapsed        string
	MinesRemaining int
}

// NewSnapshot builds the display of s. After a loss every mine is shown,
// whether or not it was revealed or flagged.
func NewSnapshot(s *session.Session) Snapshot {
	b := s.Board()
	size := b.Size()
	lost := s.Outcome() == session.Lost
	detonated, hasDetonated := s.Detonated()

	grid := make([][]CellView, size)
	for row := 0; row < size; row++ {
		grid[row] = make([]CellView, size)
		for col := 0; col < size; col++ {
			c := b.Cell(row, col)
			v := CellView{}
			switch {
			case lost && c.HasMine:
				v.State = Mine
				v.Detonated = hasDetonated && detonated.Row == row && detonated.Col == col
			case c.Revealed:
				v.State = Revealed
				v.Count = b.AdjacentMines(row, col)
			case c.Flagged:
				v.State = Flagged
			default:
				v.State = Hidden
			}
			grid[row][col] = v
		}
	}

	return Snapshot{
		Size:           size,
		Cells:          grid,
		Outcome:        s.Outcome(),
		Elapsed:        s.Clock().Format(),
		MinesRemaining: s.MinesRemaining(),
	}
}

// At returns the view of (row, col), or a hidden cell when out of range.
func (s Snapshot) At(row, col int) CellView {
	if row < 0 || row >= s.Size || col < 0 || col >= s.Size {
		return CellView{}
	}
	return s.Cells[row][col]
}

// Change is one cell whose display differs between two snapshots.
type Change struct {
	Row, Col int
	From, To CellView
}

// Diff lists the cells that differ between prev and next, row-major.
// A prev of a different size (e.g. the zero Snapshot) counts every cell
// of next as changed.
func Diff(prev, next Snapshot) []Change {
	var changes []Change
	for row := 0; row < next.Size; row++ {
		for col := 0; col < next.Size; col++ {
			to := next.Cells[row][col]
			if prev.Size == next.Size {
				from := prev.Cells[row][col]
				if from == to {
					continue
				}
				changes = append(changes, Change{Row: row, Col: col, From: from, To: to})
				continue
			}
			changes = append(changes, Change{Row: row, Col: col, To: to})
		}
	}
	return changes
}
