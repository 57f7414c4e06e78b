package session

// State is the wrapper's lifecycle position. At most one statement and
// one cursor are ever tracked; the state names which of them are live.
type State int

const (
	StateIdle State = iota
	StateStatementOpen
	StateResultOpen
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateStatementOpen:
		return "STATEMENT_OPEN"
	case StateResultOpen:
		return "RESULT_OPEN"
	default:
		return "UNKNOWN"
	}
}
