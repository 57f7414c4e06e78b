package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zeptools/sqlsession/sqldb"
)

type Stmt struct {
	sqldb.BoundParams // [Embedded]
	conn              *pgx.Conn
	name              string
}

// Ensure pgsql.Stmt implements sqldb.Stmt interface
var _ sqldb.Stmt = (*Stmt)(nil)

func (s *Stmt) Query(ctx context.Context) (sqldb.Cursor, error) {
	rows, err := s.conn.Query(ctx, s.name, s.Args()...)
	if err != nil {
		return nil, err
	}
	return newCursor(rows), nil
}

func (s *Stmt) Exec(ctx context.Context) (sqldb.Result, error) {
	tag, err := s.conn.Exec(ctx, s.name, s.Args()...)
	if err != nil {
		return nil, err
	}
	return &Result{tag: tag}, nil
}

// ExecBatch sends all queued rows in a single round trip.
func (s *Stmt) ExecBatch(ctx context.Context) (sqldb.Result, error) {
	batch := &pgx.Batch{}
	for _, row := range s.Rows() {
		batch.Queue(s.name, row...)
	}
	br := s.conn.SendBatch(ctx, batch)
	var affected int64
	for i := range s.Rows() {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return nil, fmt.Errorf("batch row %d: %w", i+1, err)
		}
		affected += tag.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return nil, err
	}
	s.ClearRows()
	return &Result{affected: affected, summed: true}, nil
}

// Close deallocates the server-side statement.
func (s *Stmt) Close() error {
	if s.conn.IsClosed() {
		return nil
	}
	return s.conn.Deallocate(context.Background(), s.name)
}
