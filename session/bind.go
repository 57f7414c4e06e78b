package session

import "time"

// bind sets value at the current parameter position and advances it.
// Binding order must match the placeholder order in the SQL text; the
// session only tracks the position.
func (s *Session) bind(value any) *Session {
	if s.err != nil {
		return s
	}
	if s.stmt == nil {
		s.fail(ErrNoStatement)
		return s
	}
	if err := s.stmt.Bind(s.argPos, value); err != nil {
		s.fail(&BindError{Pos: s.argPos, Err: err})
		return s
	}
	s.argPos++
	return s
}

func (s *Session) BindString(v string) *Session {
	return s.bind(v)
}

func (s *Session) BindInt(v int) *Session {
	return s.bind(v)
}

func (s *Session) BindInt64(v int64) *Session {
	return s.bind(v)
}

// BindDate binds only the calendar date, dropping the time of day.
func (s *Session) BindDate(v time.Time) *Session {
	y, m, d := v.Date()
	return s.bind(time.Date(y, m, d, 0, 0, 0, 0, v.Location()))
}

func (s *Session) BindTimestamp(v time.Time) *Session {
	return s.bind(v)
}

// QueueBatchRow adds the currently bound parameters to the statement's
// batch and resets the position to 1 for the next row. Complete with
// ExecuteBatch.
func (s *Session) QueueBatchRow() *Session {
	if s.err != nil {
		return s
	}
	if s.stmt == nil {
		s.fail(ErrNoStatement)
		return s
	}
	if err := s.stmt.QueueRow(); err != nil {
		s.fail(&BindError{Err: err})
		return s
	}
	s.argPos = 1
	return s
}
