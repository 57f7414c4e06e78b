package mysql

import (
	"database/sql"

	"github.com/zeptools/sqlsession/sqldb"
)

type Result struct {
	result       sql.Result // nil for batch results
	affected     int64
	lastInsertID int64
	summed       bool
}

// Ensure mysql.Result implements sqldb.Result interface
var _ sqldb.Result = (*Result)(nil)

func (r *Result) RowsAffected() (int64, error) {
	if r.summed {
		return r.affected, nil
	}
	return r.result.RowsAffected()
}

func (r *Result) LastInsertId() (int64, error) {
	if r.summed {
		return r.lastInsertID, nil
	}
	return r.result.LastInsertId()
}
