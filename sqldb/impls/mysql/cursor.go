package mysql

import (
	"database/sql"
	"fmt"

	"github.com/zeptools/sqlsession/sqldb"
)

type Cursor struct {
	rows    *sql.Rows
	cols    []string
	vals    []any // current row, nil between rows
	scanErr error
}

// Ensure mysql.Cursor implements sqldb.Cursor interface
var _ sqldb.Cursor = (*Cursor)(nil)

func newCursor(rows *sql.Rows) (*Cursor, error) {
	cols, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		return nil, err
	}
	return &Cursor{rows: rows, cols: cols}, nil
}

func (c *Cursor) Next() bool {
	c.vals = nil
	if !c.rows.Next() {
		return false
	}
	vals := make([]any, len(c.cols))
	ptrs := make([]any, len(c.cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := c.rows.Scan(ptrs...); err != nil {
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
	return c.rows.Close()
}
