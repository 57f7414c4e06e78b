package pgsql

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/zeptools/sqlsession/sqldb"
)

type Result struct {
	tag      pgconn.CommandTag
	affected int64
	summed   bool
}

// Ensure pgsql.Result implements sqldb.Result interface
var _ sqldb.Result = (*Result)(nil)

func (r *Result) RowsAffected() (int64, error) {
	if r.summed {
		return r.affected, nil
	}
	return r.tag.RowsAffected(), nil
}

func (r *Result) LastInsertId() (int64, error) {
	return 0, fmt.Errorf("LastInsertId not supported by pgsql; use RETURNING")
}
