package sqlstore

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq" // Import pq driver.
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // Import sqlite driver.
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultKey is the row the high score is stored under.
const DefaultKey = "default"

const migrations = `
CREATE TABLE IF NOT EXISTS high_scores (
	key VARCHAR(255) PRIMARY KEY,
	value INTEGER NOT NULL
);
`

// NewSQLStore returns a new store on an sqlite file or a postgres database.
func NewSQLStore(driver, dsn string) (*Store, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, errors.Errorf("unsupported sql driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s database", driver)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if driver == DriverSQLite {
		// sqlite allows one writer; queue callers instead of failing busy.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "unable to reach %s database", driver)
	}

	if _, err = db.ExecContext(ctx, migrations); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to migrate high_scores")
	}
	return &Store{db: db, driver: driver, key: DefaultKey}, nil
}

// Store represents an SQL store.
type Store struct {
	db     *sql.DB
	driver string
	key    string
}

// rebind rewrites ? placeholders into the $n form postgres expects.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// GetHighScore reads the stored high score, 0 if there is none.
func (s *Store) GetHighScore(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx,
		s.rebind("SELECT value FROM high_scores WHERE key=?"), s.key,
	).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to read high score")
	}
	if v < 0 {
		log.WithField("Value", v).Warn("negative high score in database, treating it as 0")
		return 0, nil
	}
	return v, nil
}

// SaveHighScore stores candidate if it beats the stored value.
func (s *Store) SaveHighScore(ctx context.Context, candidate int) (bool, error) {
	if candidate <= 0 {
		return false, nil
	}
	// Do a conditional update or insert.
	// - If `key` doesn't exist insert candidate.
	// - If `key` exists with a lower value replace it.
	// - Otherwise nothing changes and no row is affected.
	res, err := s.db.ExecContext(ctx, s.rebind(`
	INSERT INTO high_scores (key, value) VALUES (?, ?)
	ON CONFLICT (key)
	DO UPDATE SET value=excluded.value
	WHERE high_scores.value < excluded.value`),
		s.key, candidate,
	)
	if err != nil {
		return false, errors.Wrap(err, "unable to save high score")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "unable to save high score")
	}
	return n > 0, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
