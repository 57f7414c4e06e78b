package sqldb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfs(t *testing.T) {
	confPath := filepath.Join(t.TempDir(), ".sql-databases.json")
	require.NoError(t, os.WriteFile(confPath, []byte(`{
		"main": {"type": "pgsql", "host": "localhost", "port": 5432, "user": "app", "pw": "secret", "db": "appdb", "tz": "UTC"},
		"legacy": {"type": "mysql", "dsn": "app:secret@tcp(localhost:3306)/legacy?parseTime=true"}
	}`), 0o600))

	confs, err := LoadConfs(confPath)
	require.NoError(t, err)
	require.Len(t, confs, 2)
	require.Equal(t, "pgsql", confs["main"].Type)
	require.Equal(t, 5432, confs["main"].Port)
	require.Equal(t, "app:secret@tcp(localhost:3306)/legacy?parseTime=true", confs["legacy"].DSN)
}

func TestLoadConfsMissingFile(t *testing.T) {
	_, err := LoadConfs(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
