package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql" // side-effect
	"github.com/zeptools/sqlsession/sqldb"
)

func init() {
	sqldb.RegisterFactory("mysql", func(ctx context.Context, conf *sqldb.Conf) (sqldb.Conn, error) {
		return Connect(ctx, conf)
	})
}

// Conn pins one dedicated connection for the session's lifetime.
// Pooling stays the application's concern.
type Conn struct {
	db   *sql.DB   // owned handle, nil when wrapping an external conn
	conn *sql.Conn // the pinned connection
}

// Ensure mysql.Conn implements sqldb.Conn interface
var _ sqldb.Conn = (*Conn)(nil)

func Connect(ctx context.Context, conf *sqldb.Conf) (*Conn, error) {
	dsn := conf.DSN
	if dsn == "" {
		dsn = fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=%s&sql_mode=ANSI_QUOTES",
			conf.User,
			conf.PW,
			conf.Host,
			conf.Port,
			conf.DB,
			conf.TZ,
		)
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxLifetime(time.Minute * 3)
	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		_ = db.Close()
		return nil, err
	}
	log.Println("[INFO] mysql connection established")
	return &Conn{db: db, conn: conn}, nil
}

// Wrap adapts a connection owned by the caller, e.g. one checked out of
// an application-managed pool. Closing the wrapper returns that
// connection without closing the pool.
func Wrap(conn *sql.Conn) *Conn {
	return &Conn{conn: conn}
}

func (c *Conn) Prepare(ctx context.Context, query string) (sqldb.Stmt, error) {
	stmt, err := c.conn.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return &Stmt{stmt: stmt}, nil
}

func (c *Conn) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	if c.db != nil {
		if dberr := c.db.Close(); err == nil {
			err = dberr
		}
		c.db = nil
		log.Println("[INFO] mysql connection closed")
	}
	return err
}
