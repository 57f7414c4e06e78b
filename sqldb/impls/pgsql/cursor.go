package pgsql

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zeptools/sqlsession/sqldb"
)

type Cursor struct {
	rows    pgx.Rows
	cols    []string
	vals    []any // current row, nil between rows
	scanErr error
}

// Ensure pgsql.Cursor implements sqldb.Cursor interface
var _ sqldb.Cursor = (*Cursor)(nil)

func newCursor(rows pgx.Rows) *Cursor {
	fds := rows.FieldDescriptions()
	cols := make([]string, len(fds))
	for i, fd := range fds {
		cols[i] = fd.Name
	}
	return &Cursor{rows: rows, cols: cols}
}

func (c *Cursor) Next() bool {
	c.vals = nil
	if !c.rows.Next() {
		return false
	}
	vals, err := c.rows.Values()
	if err != nil {
		c.scanErr = err
		return false
	}
	c.vals = vals
	return true
}

func (c *Cursor) Err() error {
	if c.scanErr != nil {
		return c.scanErr
	}
	return c.rows.Err()
}

func (c *Cursor) Value(column string) (any, error) {
	if c.vals == nil {
		return nil, fmt.Errorf("no current row")
	}
	return sqldb.ColumnValue(c.cols, c.vals, column)
}

func (c *Cursor) Close() error {
	c.rows.Close()
	return nil
}
