package filestore

import (
	"context"
	"os/user"
	"path"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/snakearcade/engine/controller"
)

// DefaultFile is the high score file used when no path is given, relative
// to the user's home directory.
const DefaultFile = ".snakearcade/highscore.json"

func defaultPath() string {
	return path.Join(homeDir(), DefaultFile)
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// NewFileStore returns a file based store implementation that keeps the
// high score in a single JSON document.
func NewFileStore(file string) controller.Store {
	if file == "" {
		file = defaultPath()
	}
	return &fileStore{file: file}
}

type fileStore struct {
	lock sync.Mutex
	file string
}

func (fs *fileStore) GetHighScore(ctx context.Context) (int, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	return fs.read()
}

func (fs *fileStore) SaveHighScore(ctx context.Context, candidate int) (bool, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	current, err := fs.read()
	if err != nil {
		return false, err
	}
	if candidate <= current {
		return false, nil
	}
	if err := writeHighScore(fs.file, candidate); err != nil {
		return false, errors.Wrapf(err, "unable to write high score to %s", fs.file)
	}
	return true, nil
}

// read loads the stored value. A corrupt document is logged and read as 0 so
// the next save can repair it.
func (fs *fileStore) read() (int, error) {
	hs, err := readHighScore(fs.file)
	if err == errCorrupt {
		log.WithField("File", fs.file).Warn("high score file is corrupt, treating it as empty")
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "unable to read high score from %s", fs.file)
	}
	return hs, nil
}
