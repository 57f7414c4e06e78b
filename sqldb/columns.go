package sqldb

import (
	"fmt"
	"strings"
)

// ColumnValue resolves a column name against a result row. Exact match
// first, so duplicate names differing only in case stay addressable.
func ColumnValue(cols []string, vals []any, column string) (any, error) {
	for i, name := range cols {
		if name == column {
			return vals[i], nil
		}
	}
	for i, name := range cols {
		if strings.EqualFold(name, column) {
			return vals[i], nil
		}
	}
	return nil, fmt.Errorf("unknown column %q", column)
}
