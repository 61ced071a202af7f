package board

import (
	"errors"
	"testing"

	"go-minesweeper/internal/utils"
)

// layMines places mines by hand, bypassing the random placement.
func layMines(t *testing.T, b *Board, points ...Point) {
	t.Helper()
	for _, p := range points {
		if !b.InBounds(p.Row, p.Col) {
			t.Fatalf("mine (%d, %d) is off the board", p.Row, p.Col)
		}
		b.cells[b.index(p.Row, p.Col)].HasMine = true
	}
	b.mines = len(points)
	b.placed = true
}

func newBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := New(size)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", size, err)
	}
	return b
}

func TestNewRejectsInvalidSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		if _, err := New(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d): expected ErrInvalidSize, got %v", size, err)
		}
	}
}

func TestNewBoardIsBlank(t *testing.T) {
	b := newBoard(t, 10)
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			if c := b.Cell(row, col); c != (Cell{}) {
				t.Fatalf("Expected blank cell at (%d, %d), got %+v", row, col, c)
			}
		}
	}
	if b.MinesPlaced() {
		t.Error("Expected no mines placed on a new board")
	}
}

func TestNeighborsAtEdges(t *testing.T) {
	b := newBoard(t, 10)
	tests := []struct {
		row, col int
		want     int
	}{
		{0, 0, 3},
		{0, 9, 3},
		{9, 0, 3},
		{9, 9, 3},
		{0, 5, 5},
		{5, 0, 5},
		{5, 5, 8},
	}
	for _, tt := range tests {
		if got := len(b.Neighbors(tt.row, tt.col)); got != tt.want {
			t.Errorf("Neighbors(%d, %d): expected %d, got %d", tt.row, tt.col, tt.want, got)
		}
	}
}

func TestAdjacentMines(t *testing.T) {
	b := newBoard(t, 3)
	layMines(t, b, Point{0, 0}, Point{0, 1}, Point{2, 2})
	tests := []struct {
		row, col int
		want     int
	}{
		{1, 1, 3},
		{1, 0, 2},
		{2, 0, 0},
		{0, 2, 1},
		{0, 0, 1}, // a mine counts its neighbors, not itself
	}
	for _, tt := range tests {
		if got := b.AdjacentMines(tt.row, tt.col); got != tt.want {
			t.Errorf("AdjacentMines(%d, %d): expected %d, got %d", tt.row, tt.col, tt.want, got)
		}
	}
}

func TestPlaceMinesCountAndExclusion(t *testing.T) {
	placers := map[string]func(*Board, int, Point, Sampler) error{
		"shuffle":   (*Board).PlaceMines,
		"rejection": (*Board).PlaceMinesRejection,
	}
	excludes := []Point{{0, 0}, {5, 5}, {9, 9}, {0, 9}, {3, 7}}
	for name, place := range placers {
		for mines := 0; mines <= 99; mines++ {
			for i, ex := range excludes {
				b := newBoard(t, 10)
				rng := utils.NewPRNGService(int64(mines*31 + i + 1))
				if err := place(b, mines, ex, rng); err != nil {
					t.Fatalf("%s: place(%d, %v) failed: %v", name, mines, ex, err)
				}
				if got := len(b.Mines()); got != mines {
					t.Fatalf("%s: expected %d mines, got %d", name, mines, got)
				}
				if b.MineCount() != mines {
					t.Fatalf("%s: expected MineCount %d, got %d", name, mines, b.MineCount())
				}
				if b.Cell(ex.Row, ex.Col).HasMine {
					t.Fatalf("%s: excluded cell %v has a mine (mines=%d)", name, ex, mines)
				}
			}
		}
	}
}

func TestPlaceMinesCoversEveryOtherCell(t *testing.T) {
	// Over many seeds every non-excluded cell should receive a mine at
	// least once, and the excluded one never.
	hits := make(map[Point]int)
	ex := Point{4, 4}
	for seed := int64(1); seed <= 400; seed++ {
		b := newBoard(t, 10)
		if err := b.PlaceMines(10, ex, utils.NewPRNGService(seed)); err != nil {
			t.Fatalf("PlaceMines failed: %v", err)
		}
		for _, p := range b.Mines() {
			hits[p]++
		}
	}
	if hits[ex] != 0 {
		t.Errorf("Expected excluded cell never mined, got %d hits", hits[ex])
	}
	if len(hits) != 99 {
		t.Errorf("Expected all 99 other cells to be mined at some point, got %d", len(hits))
	}
}

func TestPlaceMinesErrors(t *testing.T) {
	b := newBoard(t, 10)
	rng := utils.NewPRNGService(3)
	if err := b.PlaceMines(100, Point{0, 0}, rng); !errors.Is(err, ErrInvalidMines) {
		t.Errorf("Expected ErrInvalidMines for 100 mines, got %v", err)
	}
	if err := b.PlaceMines(-1, Point{0, 0}, rng); !errors.Is(err, ErrInvalidMines) {
		t.Errorf("Expected ErrInvalidMines for -1 mines, got %v", err)
	}
	if err := b.PlaceMines(5, Point{10, 0}, rng); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
	if err := b.PlaceMines(5, Point{0, 0}, rng); err != nil {
		t.Fatalf("PlaceMines failed: %v", err)
	}
	if err := b.PlaceMines(5, Point{0, 0}, rng); !errors.Is(err, ErrAlreadyPlaced) {
		t.Errorf("Expected ErrAlreadyPlaced on second call, got %v", err)
	}
}

func TestRevealEmptyBoardFloodsEverything(t *testing.T) {
	b := newBoard(t, 10)
	layMines(t, b)
	revealed, hit := b.Reveal(3, 6)
	if hit {
		t.Fatal("Expected no mine hit on an empty board")
	}
	if len(revealed) != 100 || b.RevealedCount() != 100 {
		t.Errorf("Expected 100 revealed cells, got %d (board has %d)\n%s", len(revealed), b.RevealedCount(), b)
	}
}

func TestRevealStopsAtNumberedBoundary(t *testing.T) {
	b := newBoard(t, 5)
	// A wall of mines down column 2 splits the board.
	layMines(t, b, Point{0, 2}, Point{1, 2}, Point{2, 2}, Point{3, 2}, Point{4, 2})
	revealed, hit := b.Reveal(0, 0)
	if hit {
		t.Fatal("Expected no mine hit")
	}
	if len(revealed) != 10 {
		t.Fatalf("Expected the 10 cells left of the wall, got %d\n%s", len(revealed), b)
	}
	for row := 0; row < 5; row++ {
		for col := 2; col < 5; col++ {
			if b.Cell(row, col).Revealed {
				t.Errorf("Cell (%d, %d) right of the flood should stay hidden\n%s", row, col, b)
			}
		}
	}
}

func TestRevealNumberedCellDoesNotExpand(t *testing.T) {
	b := newBoard(t, 3)
	layMines(t, b, Point{0, 0})
	revealed, _ := b.Reveal(1, 1)
	if len(revealed) != 1 {
		t.Errorf("Expected a single revealed cell, got %d", len(revealed))
	}
}

func TestRevealSkipsFlaggedCells(t *testing.T) {
	b := newBoard(t, 4)
	layMines(t, b)
	b.ToggleFlag(3, 3)
	if got, _ := b.Reveal(3, 3); got != nil {
		t.Errorf("Expected no-op on flagged cell, got %v", got)
	}
	revealed, _ := b.Reveal(0, 0)
	if len(revealed) != 15 {
		t.Errorf("Expected 15 revealed cells around the flag, got %d\n%s", len(revealed), b)
	}
	if b.Cell(3, 3).Revealed {
		t.Error("Flagged cell must not be revealed by the flood")
	}
}

func TestRevealMine(t *testing.T) {
	b := newBoard(t, 3)
	layMines(t, b, Point{1, 1})
	revealed, hit := b.Reveal(1, 1)
	if !hit {
		t.Fatal("Expected mine hit")
	}
	if len(revealed) != 1 || !b.Cell(1, 1).Revealed {
		t.Errorf("Expected only the mine revealed, got %v", revealed)
	}
	if b.RevealedCount() != 1 {
		t.Errorf("Expected 1 revealed cell, got %d", b.RevealedCount())
	}
}

func TestRevealIsMonotonic(t *testing.T) {
	b := newBoard(t, 3)
	layMines(t, b, Point{0, 0})
	b.Reveal(2, 2)
	before := b.String()
	if got, hit := b.Reveal(2, 2); got != nil || hit {
		t.Errorf("Expected no-op on revealed cell, got %v, %v", got, hit)
	}
	if _, ok := b.ToggleFlag(2, 2); ok {
		t.Error("Expected flag toggle on revealed cell to be refused")
	}
	if after := b.String(); after != before {
		t.Errorf("Board changed:\n%s\nvs\n%s", before, after)
	}
}

func TestRevealOutOfBounds(t *testing.T) {
	b := newBoard(t, 3)
	if got, hit := b.Reveal(-1, 0); got != nil || hit {
		t.Error("Expected no-op for out-of-bounds reveal")
	}
	if _, ok := b.ToggleFlag(0, 3); ok {
		t.Error("Expected no-op for out-of-bounds flag")
	}
}

func TestToggleFlagCounts(t *testing.T) {
	b := newBoard(t, 3)
	if flagged, ok := b.ToggleFlag(0, 0); !ok || !flagged {
		t.Fatalf("Expected flag set, got flagged=%v ok=%v", flagged, ok)
	}
	b.ToggleFlag(1, 1)
	if b.FlagCount() != 2 {
		t.Errorf("Expected 2 flags, got %d", b.FlagCount())
	}
	if flagged, _ := b.ToggleFlag(0, 0); flagged {
		t.Error("Expected flag cleared on second toggle")
	}
	if b.FlagCount() != 1 {
		t.Errorf("Expected 1 flag, got %d", b.FlagCount())
	}
}

func TestFlagsMatchMines(t *testing.T) {
	b := newBoard(t, 4)
	layMines(t, b, Point{0, 0}, Point{2, 3})

	if b.FlagsMatchMines() {
		t.Error("No flags should not match two mines")
	}
	b.ToggleFlag(1, 1)
	b.ToggleFlag(2, 3)
	if b.FlagsMatchMines() {
		t.Error("One wrong flag should not match")
	}
	b.ToggleFlag(1, 1)
	b.ToggleFlag(0, 0)
	if !b.FlagsMatchMines() {
		t.Errorf("Exact flags should match\n%s", b)
	}
	b.ToggleFlag(3, 3)
	if b.FlagsMatchMines() {
		t.Error("An extra flag should not match")
	}
}

func TestString(t *testing.T) {
	b := newBoard(t, 3)
	layMines(t, b, Point{0, 0})
	b.ToggleFlag(0, 0)
	b.Reveal(2, 2)
	want := "F1.\n11.\n...\n"
	if got := b.String(); got != want {
		t.Errorf("Expected\n%s\ngot\n%s", want, got)
	}
}
