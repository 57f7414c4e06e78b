package sqldb

import "context"

// Conn is an open database connection able to prepare parameterized
// statements. Establishing the connection (DSN, auth, TLS) is the
// driver impl's concern; see impls/mysql and impls/pgsql.
type Conn interface {
	Prepare(ctx context.Context, query string) (Stmt, error)
	Close() error
}

// Stmt is a prepared statement with positional typed parameters.
// Positions are 1-based, matching placeholder order in the SQL text.
type Stmt interface {
	// Bind sets the parameter at pos. Rebinding a position overwrites it.
	Bind(pos int, value any) error

	// QueueRow snapshots the currently bound parameters as one batch row
	// and clears them, so the next row can be bound from position 1.
	QueueRow() error

	Query(ctx context.Context) (Cursor, error)
	Exec(ctx context.Context) (Result, error)

	// ExecBatch executes all queued rows. Drivers without wire-level batch
	// support replay the statement per row.
	ExecBatch(ctx context.Context) (Result, error)

	Close() error
}

// Cursor iterates over a query's result rows.
type Cursor interface {
	Next() bool
	Err() error

	// Value returns the current row's value for the named column.
	// Lookup is exact-match first, then case-insensitive.
	Value(column string) (any, error)

	Close() error
}

type Result interface {
	RowsAffected() (int64, error)
	LastInsertId() (int64, error)
}
