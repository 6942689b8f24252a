package sqlstore

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/snakearcade/engine/controller/testsuite"
	"github.com/stretchr/testify/require"
)

func mustExec(db *sql.DB, sq string) {
	if _, err := db.Exec(sq); err != nil {
		panic(err)
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLStore(DriverSQLite, filepath.Join(t.TempDir(), "highscore.db"))
	require.NoError(t, err)
	defer s.Close()

	testsuite.Suite(t, s, func() {
		mustExec(s.db, "DELETE FROM high_scores")
	})
}

func TestSQLiteStore_Reopen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "highscore.db")
	s, err := NewSQLStore(DriverSQLite, file)
	require.NoError(t, err)
	ok, err := s.SaveHighScore(context.Background(), 90)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, s.Close())

	s, err = NewSQLStore(DriverSQLite, file)
	require.NoError(t, err)
	defer s.Close()
	hs, err := s.GetHighScore(context.Background())
	require.NoError(t, err)
	require.Equal(t, 90, hs)
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("SNAKE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("SNAKE_TEST_POSTGRES_DSN not set")
	}
	s, err := NewSQLStore(DriverPostgres, dsn)
	require.NoError(t, err)
	defer s.Close()

	testsuite.Suite(t, s, func() {
		mustExec(s.db, "TRUNCATE high_scores")
	})
}

func TestNewSQLStore_UnknownDriver(t *testing.T) {
	_, err := NewSQLStore("oracle", "")
	require.Error(t, err)
}

func TestRebind(t *testing.T) {
	pg := &Store{driver: DriverPostgres}
	require.Equal(t, "SELECT value FROM t WHERE a=$1 AND b=$2", pg.rebind("SELECT value FROM t WHERE a=? AND b=?"))

	lite := &Store{driver: DriverSQLite}
	require.Equal(t, "SELECT ?", lite.rebind("SELECT ?"))
}
