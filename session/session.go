// Package session wraps one database connection, one prepared statement,
// and one result cursor behind a builder-style API, so callers stop
// hand-writing the prepare/bind/execute/iterate/close dance. The wrapper
// guarantees that starting a new statement, or failing anywhere along the
// way, always closes whatever statement and cursor were live before, and
// leaves the session reusable on the same connection.
//
// Statement-building operations (Begin, the Bind family, QueueBatchRow)
// chain; the first failure among them performs cleanup and is held until
// the next terminal operation (ExecuteQuery, ExecuteUpdate, ExecuteBatch)
// surfaces it. Close is idempotent and belongs in a defer.
//
//	s := session.New().Attach(conn, true)
//	defer s.Close()
//
//	err := s.Begin(ctx, "SELECT age FROM users WHERE name = ?").
//		BindString("Luke").
//		ExecuteQuery(ctx)
//	if err != nil {
//		return err
//	}
//	for {
//		ok, err := s.Advance()
//		if err != nil || !ok {
//			break
//		}
//		age, _ := s.GetInt("age")
//		fmt.Println(age)
//	}
package session

import (
	"context"
	"errors"
	"log"

	"github.com/zeptools/sqlsession/sqldb"
)

// Session owns at most one live statement and one live cursor on one
// connection. Not safe for concurrent use; one logical caller drives one
// session for one unit of work.
type Session struct {
	conn          sqldb.Conn
	stmt          sqldb.Stmt
	cursor        sqldb.Cursor
	argPos        int // next 1-based parameter position
	autoCloseConn bool
	state         State
	err           error // first builder failure, surfaced by the next terminal op
}

func New() *Session {
	return &Session{argPos: 1}
}

// Attach sets the connection the session works on. It never fails, so it
// can run before any cleanup scope is entered. With autoCloseConn the
// session releases the connection in Close; otherwise the caller keeps
// that responsibility.
func (s *Session) Attach(conn sqldb.Conn, autoCloseConn bool) *Session {
	s.conn = conn
	s.autoCloseConn = autoCloseConn
	return s
}

// Begin starts a new statement. Any statement or cursor still open from
// the previous one is closed first, and a sticky error from a previous
// build is cleared: every Begin starts from a clean slate.
func (s *Session) Begin(ctx context.Context, query string) *Session {
	s.closeResults()
	s.err = nil
	if s.conn == nil {
		s.fail(&PrepareError{Query: query, Err: errors.New("no connection attached")})
		return s
	}
	stmt, err := s.conn.Prepare(ctx, query)
	if err != nil {
		s.fail(&PrepareError{Query: query, Err: err})
		return s
	}
	s.stmt = stmt
	s.argPos = 1
	s.state = StateStatementOpen
	return s
}

// State reports which resources are currently live.
func (s *Session) State() State {
	return s.state
}

// Err returns the pending builder error without consuming it.
func (s *Session) Err() error {
	return s.err
}

// Close releases everything the session still tracks. Idempotent, safe
// even if Attach was never called, and meant for a defer. The connection
// is closed only when the session owns it; close-time driver errors are
// never escalated.
func (s *Session) Close() {
	s.closeResults()
	s.err = nil
	if s.conn == nil || !s.autoCloseConn {
		return
	}
	if err := s.conn.Close(); err != nil {
		log.Printf("[WARN] connection close failed: %v", err)
	}
	s.conn = nil
}

// fail performs the cleanup pass and records err as the sticky builder
// error, keeping the first failure when several stack up.
func (s *Session) fail(err error) {
	s.closeResults()
	if s.err == nil {
		s.err = err
	}
}

// takeErr consumes the sticky error so the session is clean for the
// caller's next statement.
func (s *Session) takeErr() error {
	err := s.err
	s.err = nil
	return err
}

// closeResults closes the cursor and statement, best-effort, leaving the
// connection open for further statements. Close-time driver errors are
// logged and suppressed so they never mask the failure that got us here.
func (s *Session) closeResults() {
	if s.cursor != nil {
		if err := s.cursor.Close(); err != nil {
			log.Printf("[WARN] cursor close failed: %v", err)
		}
		s.cursor = nil
	}
	if s.stmt != nil {
		if err := s.stmt.Close(); err != nil {
			log.Printf("[WARN] statement close failed: %v", err)
		}
		s.stmt = nil
	}
	s.state = StateIdle
}

// closeCursor closes only the cursor, keeping the statement open.
func (s *Session) closeCursor() {
	if s.cursor != nil {
		if err := s.cursor.Close(); err != nil {
			log.Printf("[WARN] cursor close failed: %v", err)
		}
		s.cursor = nil
	}
	if s.stmt != nil {
		s.state = StateStatementOpen
	} else {
		s.state = StateIdle
	}
}
