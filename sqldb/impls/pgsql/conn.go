package pgsql

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/zeptools/sqlsession/sqldb"
)

func init() {
	sqldb.RegisterFactory("pgsql", func(ctx context.Context, conf *sqldb.Conf) (sqldb.Conn, error) {
		return Connect(ctx, conf)
	})
}

// Conn wraps a single pgx connection. A session owns exactly one
// connection; pooling stays the application's concern.
type Conn struct {
	conn *pgx.Conn
}

// Ensure pgsql.Conn implements sqldb.Conn interface
var _ sqldb.Conn = (*Conn)(nil)

func Connect(ctx context.Context, conf *sqldb.Conf) (*Conn, error) {
	dsn := conf.DSN
	if dsn == "" {
		// NOTE: sslmode=disable is often used for local dev, adjust as needed.
		dsn = fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=%s",
			conf.Host,
			conf.Port,
			conf.User,
			conf.PW,
			conf.DB,
			conf.TZ,
		)
	}
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect pgsql: %w", err)
	}
	if err = conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("pgsql ping failed: %w", err)
	}
	log.Println("[INFO] pgsql connection established")
	return &Conn{conn: conn}, nil
}

// Wrap adapts a connection owned by the caller. Closing the wrapper
// closes the underlying connection.
func Wrap(conn *pgx.Conn) *Conn {
	return &Conn{conn: conn}
}

// Prepare rewrites portable `?` placeholders to `$N` and prepares a
// named server-side statement.
func (c *Conn) Prepare(ctx context.Context, query string) (sqldb.Stmt, error) {
	query = sqldb.RewritePlaceholders(query, sqldb.PlaceholderPrefixForDBType["pgsql"])
	name := stmtName()
	if _, err := c.conn.Prepare(ctx, name, query); err != nil {
		return nil, err
	}
	return &Stmt{conn: c.conn, name: name}, nil
}

func (c *Conn) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close(context.Background())
	c.conn = nil
	log.Println("[INFO] pgsql connection closed")
	return err
}

func stmtName() string {
	return "ss_" + uuid.NewString()
}
