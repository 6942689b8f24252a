package filestore

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadHighScore(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		Name     string
		Content  string
		Expected int
		Err      error
	}{
		{Name: "valid", Content: `{"high_score": 230}`, Expected: 230},
		{Name: "missing key", Content: `{}`, Expected: 0},
		{Name: "garbage", Content: `high score: lots`, Err: errCorrupt},
		{Name: "negative", Content: `{"high_score": -5}`, Err: errCorrupt},
		{Name: "wrong type", Content: `{"high_score": "ten"}`, Err: errCorrupt},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			file := filepath.Join(dir, test.Name+".json")
			require.NoError(t, ioutil.WriteFile(file, []byte(test.Content), 0644))

			hs, err := readHighScore(file)
			require.Equal(t, test.Err, err)
			require.Equal(t, test.Expected, hs)
		})
	}
}

func TestReadHighScore_Missing(t *testing.T) {
	hs, err := readHighScore(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Equal(t, 0, hs)
}
