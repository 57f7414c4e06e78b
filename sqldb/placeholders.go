package sqldb

import (
	"strconv"
	"strings"
)

var PlaceholderPrefixForDBType = map[string]byte{
	"mysql":  '?',
	"pgsql":  '$',
	"mssql":  '@',
	"oracle": ':',
	"sqlite": 0, // NOTE: sqlite supports all of them
}

// RewritePlaceholders converts portable `?` placeholders to the ordinal
// form of the target dialect, e.g. `$1, $2` for pgsql.
// A `?` prefix (or 0) means the dialect takes `?` as-is and the SQL is
// returned unchanged. Question marks inside quoted literals are left alone.
func RewritePlaceholders(sql string, prefix byte) string {
	if prefix == '?' || prefix == 0 {
		return sql
	}
	var b strings.Builder
	b.Grow(len(sql) + 8)
	cnt := 1
	var quote byte // current string/identifier quote, 0 when outside
	for i := 0; i < len(sql); i++ {
		ch := sql[i]
		if quote != 0 {
			b.WriteByte(ch)
			if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '\'', '"', '`':
			quote = ch
			b.WriteByte(ch)
		case '?':
			b.WriteByte(prefix)
			b.WriteString(strconv.Itoa(cnt))
			cnt++
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
