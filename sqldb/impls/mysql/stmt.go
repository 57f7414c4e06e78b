package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zeptools/sqlsession/sqldb"
)

type Stmt struct {
	sqldb.BoundParams // [Embedded]
	stmt              *sql.Stmt
}

// Ensure mysql.Stmt implements sqldb.Stmt interface
var _ sqldb.Stmt = (*Stmt)(nil)

func (s *Stmt) Query(ctx context.Context) (sqldb.Cursor, error) {
	rows, err := s.stmt.QueryContext(ctx, s.Args()...)
	if err != nil {
		return nil, err
	}
	return newCursor(rows)
}

func (s *Stmt) Exec(ctx context.Context) (sqldb.Result, error) {
	result, err := s.stmt.ExecContext(ctx, s.Args()...)
	if err != nil {
		return nil, err
	}
	return &Result{result: result}, nil
}

// ExecBatch replays the statement per queued row; database/sql has no
// wire-level batch.
func (s *Stmt) ExecBatch(ctx context.Context) (sqldb.Result, error) {
	var affected int64
	var lastID int64
	for i, row := range s.Rows() {
		result, err := s.stmt.ExecContext(ctx, row...)
		if err != nil {
			return nil, fmt.Errorf("batch row %d: %w", i+1, err)
		}
		if n, err := result.RowsAffected(); err == nil {
			affected += n
		}
		if id, err := result.LastInsertId(); err == nil {
			lastID = id
		}
	}
	s.ClearRows()
	return &Result{affected: affected, lastInsertID: lastID, summed: true}, nil
}

func (s *Stmt) Close() error {
	return s.stmt.Close()
}
