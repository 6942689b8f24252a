package filestore

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

var errCorrupt = errors.New("corrupt high score document")

type document struct {
	HighScore int `json:"high_score"`
}

func readHighScore(file string) (int, error) {
	data, err := ioutil.ReadFile(file)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	doc := document{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, errCorrupt
	}
	if doc.HighScore < 0 {
		return 0, errCorrupt
	}
	return doc.HighScore, nil
}
