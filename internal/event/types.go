// internal/event/types.go
package event

const (
	SessionStarted EventType = "SessionStarted" // fresh session, clock at zero
	CellsRevealed  EventType = "CellsRevealed"  // Data: RevealedData
	FlagToggled    EventType = "FlagToggled"    // Data: FlagData
	GameWon        EventType = "GameWon"        // Data: OutcomeData
	GameLost       EventType = "GameLost"       // Data: OutcomeData
)

// RevealedData lists the cells a single reveal action opened.
type RevealedData struct {
	SessionID string
	Rows      []int
	Cols      []int
}

// FlagData describes one flag toggle.
type FlagData struct {
	SessionID string
	Row, Col  int
	Flagged   bool
}

// OutcomeData is sent with GameWon and GameLost.
type OutcomeData struct {
	SessionID string
	Row, Col  int // cell whose action ended the game
}
