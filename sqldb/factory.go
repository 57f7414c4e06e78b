package sqldb

import (
	"context"
	"fmt"
)

// ConnFactory is a callback that opens a Conn from Conf.
// It is registered with RegisterFactory and called by sqldb.Open.
type ConnFactory func(ctx context.Context, conf *Conf) (Conn, error)

var registry = map[string]ConnFactory{}

// RegisterFactory registers a driver impl under a db type name.
// Impls call this from init(), so a blank import is enough to enable one.
func RegisterFactory(dbType string, factory ConnFactory) {
	registry[dbType] = factory
}

func Open(ctx context.Context, dbType string, conf *Conf) (Conn, error) {
	factory, ok := registry[dbType]
	if !ok {
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
	return factory(ctx, conf)
}
