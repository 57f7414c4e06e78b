package session

import (
	"time"

	"github.com/zeptools/sqlsession/nullable"
)

// getColumn fetches the named column from the current row. Any failure
// closes statement and cursor before surfacing.
func (s *Session) getColumn(column string) (any, error) {
	if s.err != nil {
		return nil, s.takeErr()
	}
	if s.cursor == nil {
		s.fail(ErrNoResults)
		return nil, s.takeErr()
	}
	v, err := s.cursor.Value(column)
	if err != nil {
		s.fail(&ColumnError{Column: column, Err: err})
		return nil, s.takeErr()
	}
	return v, nil
}

// convert funnels one column value through a converter, mapping failed
// conversions to *ColumnError with the usual cleanup.
func convert[T any](s *Session, column string, conv func(any) (T, error)) (T, error) {
	var zero T
	v, err := s.getColumn(column)
	if err != nil {
		return zero, err
	}
	out, err := conv(v)
	if err != nil {
		s.fail(&ColumnError{Column: column, Err: err})
		return zero, s.takeErr()
	}
	return out, nil
}

// GetString returns the named column of the current row. SQL NULL comes
// back as the zero value; use GetNullString to tell NULL apart.
func (s *Session) GetString(column string) (string, error) {
	return convert(s, column, toString)
}

func (s *Session) GetInt(column string) (int, error) {
	v, err := convert(s, column, toInt64)
	return int(v), err
}

func (s *Session) GetInt64(column string) (int64, error) {
	return convert(s, column, toInt64)
}

// GetDate returns the named column truncated to its calendar date.
func (s *Session) GetDate(column string) (time.Time, error) {
	v, err := convert(s, column, toTime)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := v.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, v.Location()), nil
}

func (s *Session) GetTimestamp(column string) (time.Time, error) {
	return convert(s, column, toTime)
}

// GetNullString reads the named column with NULL kept observable: a SQL
// NULL yields an invalid value, not an error.
func (s *Session) GetNullString(column string) (nullable.String, error) {
	var out nullable.String
	v, err := s.getColumn(column)
	if err != nil || v == nil {
		return out, err
	}
	str, err := toString(v)
	if err != nil {
		s.fail(&ColumnError{Column: column, Err: err})
		return out, s.takeErr()
	}
	return nullable.StringOf(str), nil
}

func (s *Session) GetNullInt(column string) (nullable.Int, error) {
	var out nullable.Int
	v, err := s.getColumn(column)
	if err != nil || v == nil {
		return out, err
	}
	i, err := toInt64(v)
	if err != nil {
		s.fail(&ColumnError{Column: column, Err: err})
		return out, s.takeErr()
	}
	return nullable.IntOf(i), nil
}

func (s *Session) GetNullTime(column string) (nullable.Time, error) {
	var out nullable.Time
	v, err := s.getColumn(column)
	if err != nil || v == nil {
		return out, err
	}
	t, err := toTime(v)
	if err != nil {
		s.fail(&ColumnError{Column: column, Err: err})
		return out, s.takeErr()
	}
	return nullable.TimeOf(t), nil
}
