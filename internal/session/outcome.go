// internal/session/outcome.go
package session

// Outcome is the state of a session. Won and Lost are terminal.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further actions have an effect.
func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}
