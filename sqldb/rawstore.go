package sqldb

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
)

// RawSQLStore holds named SQL statement texts, typically loaded from
// files embedded in the application binary. Statements are written with
// portable `?` placeholders; loading converts them for the target dialect.
type RawSQLStore struct {
	stmts map[string]string
}

func NewRawStore() *RawSQLStore {
	return &RawSQLStore{stmts: make(map[string]string)}
}

func (s *RawSQLStore) Set(key string, rawStmt string) {
	s.stmts[key] = rawStmt
}

func (s *RawSQLStore) Get(key string) (string, bool) {
	stmt, exists := s.stmts[key]
	return stmt, exists
}

func (s *RawSQLStore) GetAll() map[string]string {
	return s.stmts
}

type StoreGroupedStmtKey struct {
	Group    string
	StmtName string
}

func (k StoreGroupedStmtKey) String() string {
	return k.Group + "." + k.StmtName
}

type GroupFS struct {
	Group string
	FS    fs.FS
}

var rawStoreRegistry []GroupFS

// RegisterGroup adds a filesystem (usually an embed.FS) whose `sql`
// directory will be read by LoadRawStmtsToStore.
func RegisterGroup(fsys fs.FS, group string) {
	rawStoreRegistry = append(rawStoreRegistry, GroupFS{
		FS:    fsys,
		Group: group,
	})
}

// LoadRawStmtsToStore fills the store from every registered group.
// A file with the db type as its extension (e.g. users.pgsql) wins over
// the portable users.sql variant for that dialect.
func LoadRawStmtsToStore(store *RawSQLStore, dbtype string, placeholderPrefix byte) error {
	groupCnt := 0
	stmtCnt := 0
	for _, groupFS := range rawStoreRegistry {
		n, err := LoadRawStmtsFromFS(store, groupFS.FS, groupFS.Group, dbtype, placeholderPrefix)
		if err != nil {
			return err
		}
		stmtCnt += n
		groupCnt++
	}
	log.Printf("[INFO] %d sql raw stmts loaded for %d groups", stmtCnt, groupCnt)
	return nil
}

// LoadRawStmtsFromFS loads one group's `sql` directory into the store
// and reports how many statements it added.
func LoadRawStmtsFromFS(store *RawSQLStore, fsys fs.FS, group, dbtype string, placeholderPrefix byte) (int, error) {
	files, err := fs.ReadDir(fsys, "sql")
	if err != nil {
		return 0, fmt.Errorf("failed to read `sql` dir of group %s: %w", group, err)
	}
	stmtCnt := 0
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		filename := f.Name()
		ext := filepath.Ext(filename)
		name := strings.TrimSuffix(filename, ext)
		ext = strings.TrimPrefix(ext, ".")
		data, err := fs.ReadFile(fsys, filepath.Join("sql", filename))
		if err != nil {
			return stmtCnt, fmt.Errorf("failed to read %s: %w", filename, err)
		}
		key := StoreGroupedStmtKey{Group: group, StmtName: name}.String()

		switch ext {
		case dbtype:
			// exact matching file extension -> use it as-is for dialects,
			// overriding any portable variant already loaded
			if _, exists := store.Get(key); !exists {
				stmtCnt++
			}
			store.Set(key, string(data))
		case "sql":
			// portable SQL with `?` placeholders
			if _, exists := store.Get(key); !exists {
				store.Set(key, RewritePlaceholders(string(data), placeholderPrefix))
				stmtCnt++
			}
		}
	}
	return stmtCnt, nil
}
