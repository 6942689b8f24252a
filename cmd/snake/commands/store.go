package commands

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/snakearcade/engine/config"
	"github.com/snakearcade/engine/controller"
	"github.com/snakearcade/engine/controller/filestore"
	"github.com/snakearcade/engine/controller/redisstore"
	"github.com/snakearcade/engine/controller/sqlstore"
)

const defaultRedisURL = "redis://localhost:6379/0"

// openStore builds the high score backend named by kind. dsn is backend
// specific: a file path, a redis URL or a database DSN. The returned store
// is instrumented.
func openStore(kind, dsn string) (controller.Store, error) {
	var store controller.Store
	var err error
	switch strings.ToLower(kind) {
	case config.StoreMem:
		store = controller.InMemStore()
	case config.StoreFile:
		store = filestore.NewFileStore(dsn)
	case config.StoreRedis:
		if dsn == "" {
			dsn = defaultRedisURL
		}
		store, err = redisstore.NewRedisStore(dsn, redisstore.DefaultKey)
	case config.StoreSQLite:
		if dsn == "" {
			dsn = defaultSQLitePath()
			if mkErr := os.MkdirAll(filepath.Dir(dsn), 0755); mkErr != nil {
				return nil, errors.Wrap(mkErr, "unable to create data directory")
			}
		}
		store, err = sqlstore.NewSQLStore(sqlstore.DriverSQLite, dsn)
	case config.StorePostgres:
		store, err = sqlstore.NewSQLStore(sqlstore.DriverPostgres, dsn)
	default:
		return nil, errors.Errorf("invalid store %q", kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s store", kind)
	}
	log.WithField("store", kind).Debug("high score store opened")
	return controller.InstrumentStore(store), nil
}

func closeStore(store controller.Store) {
	if c, ok := store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.WithError(err).Error("unable to close store")
		}
	}
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".snakearcade", "highscore.db")
}
