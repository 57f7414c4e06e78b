package session_test

import (
	"context"
	"errors"

	"github.com/zeptools/sqlsession/sqldb"
)

// The fakes implement the sqldb capability set in memory, with closed
// flags the tests can observe on handles the session should have
// released.

type fakeConn struct {
	prepareErr error
	closeErr   error
	closed     bool
	stmts      []*fakeStmt

	// seeds copied onto every statement this connection prepares
	cols         []string
	rows         [][]any
	bindErr      error
	queueErr     error
	queryErr     error
	execErr      error
	stmtCloseErr error
	fetchFailAt  int // 1-based row index at which Next blows up, 0 = never
}

var _ sqldb.Conn = (*fakeConn)(nil)

func (c *fakeConn) Prepare(_ context.Context, query string) (sqldb.Stmt, error) {
	if c.prepareErr != nil {
		return nil, c.prepareErr
	}
	st := &fakeStmt{
		query:       query,
		binds:       map[int]any{},
		cols:        c.cols,
		rows:        c.rows,
		bindErr:     c.bindErr,
		queueErr:    c.queueErr,
		queryErr:    c.queryErr,
		execErr:     c.execErr,
		closeErr:    c.stmtCloseErr,
		fetchFailAt: c.fetchFailAt,
	}
	c.stmts = append(c.stmts, st)
	return st, nil
}

func (c *fakeConn) Close() error {
	c.closed = true
	return c.closeErr
}

type fakeStmt struct {
	query   string
	binds   map[int]any
	order   []int // positions in bind order
	queued  []map[int]any
	closed  bool
	cursors []*fakeCursor

	cols        []string
	rows        [][]any
	bindErr     error
	queueErr    error
	queryErr    error
	execErr     error
	closeErr    error
	fetchFailAt int
}

var _ sqldb.Stmt = (*fakeStmt)(nil)

func (s *fakeStmt) Bind(pos int, value any) error {
	if s.bindErr != nil {
		return s.bindErr
	}
	s.binds[pos] = value
	s.order = append(s.order, pos)
	return nil
}

func (s *fakeStmt) QueueRow() error {
	if s.queueErr != nil {
		return s.queueErr
	}
	row := make(map[int]any, len(s.binds))
	for k, v := range s.binds {
		row[k] = v
	}
	s.queued = append(s.queued, row)
	s.binds = map[int]any{}
	return nil
}

func (s *fakeStmt) Query(_ context.Context) (sqldb.Cursor, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	cur := &fakeCursor{cols: s.cols, rows: s.rows, failAt: s.fetchFailAt}
	s.cursors = append(s.cursors, cur)
	return cur, nil
}

func (s *fakeStmt) Exec(_ context.Context) (sqldb.Result, error) {
	if s.execErr != nil {
		return nil, s.execErr
	}
	return fakeResult{affected: 1}, nil
}

func (s *fakeStmt) ExecBatch(_ context.Context) (sqldb.Result, error) {
	if s.execErr != nil {
		return nil, s.execErr
	}
	n := int64(len(s.queued))
	s.queued = nil
	return fakeResult{affected: n}, nil
}

func (s *fakeStmt) Close() error {
	s.closed = true
	return s.closeErr
}

type fakeCursor struct {
	cols   []string
	rows   [][]any
	idx    int // 0 = before first row
	failAt int
	err    error
	closed bool
}

var _ sqldb.Cursor = (*fakeCursor)(nil)

func (c *fakeCursor) Next() bool {
	c.idx++
	if c.failAt > 0 && c.idx == c.failAt {
		c.err = errors.New("connection reset during fetch")
		return false
	}
	return c.idx <= len(c.rows)
}

func (c *fakeCursor) Err() error { return c.err }

func (c *fakeCursor) Value(column string) (any, error) {
	if c.idx < 1 || c.idx > len(c.rows) {
		return nil, errors.New("no current row")
	}
	return sqldb.ColumnValue(c.cols, c.rows[c.idx-1], column)
}

func (c *fakeCursor) Close() error {
	c.closed = true
	return nil
}

type fakeResult struct {
	affected int64
	lastID   int64
}

var _ sqldb.Result = fakeResult{}

func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }
func (r fakeResult) LastInsertId() (int64, error) { return r.lastID, nil }
