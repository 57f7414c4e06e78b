package session

import (
	"context"

	"github.com/zeptools/sqlsession/sqldb"
)

// ExecuteQuery executes the built statement as a row-returning query and
// attaches its cursor. A pending builder error is surfaced here instead.
// On failure the statement is closed and the session returns to idle.
func (s *Session) ExecuteQuery(ctx context.Context) error {
	if s.err != nil {
		return s.takeErr()
	}
	if s.stmt == nil {
		s.fail(ErrNoStatement)
		return s.takeErr()
	}
	if s.cursor != nil {
		// re-executing the same statement replaces its cursor
		s.closeCursor()
	}
	cursor, err := s.stmt.Query(ctx)
	if err != nil {
		s.fail(&ExecError{Op: "query", Err: err})
		return s.takeErr()
	}
	s.cursor = cursor
	s.state = StateResultOpen
	return nil
}

// ExecuteUpdate executes the built statement as a non-row-returning
// mutation. The statement is closed afterward, success or failure.
func (s *Session) ExecuteUpdate(ctx context.Context) (sqldb.Result, error) {
	if s.err != nil {
		return nil, s.takeErr()
	}
	if s.stmt == nil {
		s.fail(ErrNoStatement)
		return nil, s.takeErr()
	}
	result, err := s.stmt.Exec(ctx)
	if err != nil {
		s.fail(&ExecError{Op: "update", Err: err})
		return nil, s.takeErr()
	}
	s.closeResults()
	return result, nil
}

// ExecuteBatch executes the rows queued with QueueBatchRow. The
// statement is closed afterward, success or failure.
func (s *Session) ExecuteBatch(ctx context.Context) (sqldb.Result, error) {
	if s.err != nil {
		return nil, s.takeErr()
	}
	if s.stmt == nil {
		s.fail(ErrNoStatement)
		return nil, s.takeErr()
	}
	result, err := s.stmt.ExecBatch(ctx)
	if err != nil {
		s.fail(&ExecError{Op: "batch", Err: err})
		return nil, s.takeErr()
	}
	s.closeResults()
	return result, nil
}

// Advance moves the cursor to the next row. It reports false on
// exhaustion, closing the cursor and keeping the statement open. A driver
// failure also reports false, with the *FetchError telling the two
// apart; that path closes statement and cursor both.
func (s *Session) Advance() (bool, error) {
	if s.err != nil {
		return false, s.takeErr()
	}
	if s.cursor == nil {
		s.fail(ErrNoResults)
		return false, s.takeErr()
	}
	if s.cursor.Next() {
		return true, nil
	}
	err := s.cursor.Err()
	if err != nil {
		s.closeResults()
		return false, &FetchError{Err: err}
	}
	s.closeCursor()
	return false, nil
}
