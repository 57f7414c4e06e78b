package session

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStatement is returned when a bind or execute operation runs
	// without Begin having opened a statement.
	ErrNoStatement = errors.New("no open statement; call Begin first")

	// ErrNoResults is returned when a row operation runs without an
	// open cursor from ExecuteQuery.
	ErrNoResults = errors.New("no open result cursor; call ExecuteQuery first")
)

// PrepareError reports a statement the connection refused to prepare.
type PrepareError struct {
	Query string
	Err   error
}

func (e *PrepareError) Error() string {
	return fmt.Sprintf("prepare failed: %v", e.Err)
}

func (e *PrepareError) Unwrap() error { return e.Err }

// BindError reports a parameter the statement refused to take.
// Pos is the 1-based parameter position, 0 when queuing a batch row.
type BindError struct {
	Pos int
	Err error
}

func (e *BindError) Error() string {
	if e.Pos == 0 {
		return fmt.Sprintf("queue batch row failed: %v", e.Err)
	}
	return fmt.Sprintf("bind arg #%d failed: %v", e.Pos, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// ExecError reports a failed query, update, or batch execution.
type ExecError struct {
	Op  string // "query", "update", "batch"
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("execute %s failed: %v", e.Op, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// FetchError reports a driver failure while advancing the cursor.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch next row failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ColumnError reports a missing column or a failed type conversion.
type ColumnError struct {
	Column string
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q: %v", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }
