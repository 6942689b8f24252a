package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

var openFileWriter = tempFileWriter

type writer interface {
	Write(p []byte) (int, error)
	Close() error
	Name() string
}

func tempFileWriter(dir string) (writer, error) {
	return os.CreateTemp(dir, ".highscore-*")
}

// writeHighScore replaces file with a new document. The document is written
// to a temporary file in the same directory and renamed over the old one, so
// a crash never leaves a half written file behind.
func writeHighScore(file string, score int) error {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0775); err != nil {
		return err
	}

	data, err := json.Marshal(document{HighScore: score})
	if err != nil {
		return err
	}

	w, err := openFileWriter(dir)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		w.Close()
		os.Remove(w.Name())
		return err
	}
	if err := w.Close(); err != nil {
		os.Remove(w.Name())
		return err
	}
	return os.Rename(w.Name(), file)
}
