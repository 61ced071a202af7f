// internal/board/types.go
package board

// Point addresses one cell. Row grows downwards, Col to the right.
type Point struct {
	Row, Col int
}

// Cell holds the state of a single square.
type Cell struct {
	HasMine  bool // set once during placement
	Revealed bool // never reverts to false
	Flagged  bool // only meaningful while not revealed
}

// Board is a square grid of cells stored row-major.
type Board struct {
	size   int
	cells  []Cell
	mines  int  // mines actually placed
	flags  int  // cells currently flagged
	placed bool // PlaceMines already ran
}

// Sampler is the randomness the board needs for mine placement.
// *utils.PRNGService satisfies it.
type Sampler interface {
	Intn(n int) int
	SampleIndices(n, k int) []int
}
