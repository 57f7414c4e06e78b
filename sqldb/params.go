package sqldb

import (
	"fmt"
	"time"
)

// MaxParams is the postgres wire-protocol limit; no supported dialect
// takes more per statement.
const MaxParams = 65535

// CheckParamPos validates a 1-based parameter position.
func CheckParamPos(pos int) error {
	if pos < 1 || pos > MaxParams {
		return fmt.Errorf("parameter position %d out of range [1, %d]", pos, MaxParams)
	}
	return nil
}

// CheckParamType rejects values no driver impl can bind. Both impls share
// this set so a statement behaves the same across dialects.
func CheckParamType(value any) error {
	switch value.(type) {
	case nil,
		string, []byte,
		int, int32, int64,
		float32, float64,
		bool,
		time.Time:
		return nil
	default:
		return fmt.Errorf("unsupported parameter type %T", value)
	}
}
