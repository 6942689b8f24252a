package config

import (
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/snakearcade/engine/rules"
	"golang.org/x/time/rate"
	yaml "gopkg.in/yaml.v2"
)

// Store backends accepted by SNAKE_STORE.
const (
	StoreMem      = "mem"
	StoreFile     = "file"
	StoreRedis    = "redis"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Configuration variables read from the environment. Load starts from these
// and lets a config file override them.
var (
	CellSize   = getEnvInt("SNAKE_CELL_SIZE", 20)
	Width      = getEnvInt("SNAKE_WIDTH", 400)
	Height     = getEnvInt("SNAKE_HEIGHT", 400)
	Difficulty = getEnvString("SNAKE_DIFFICULTY", rules.DefaultDifficulty.Name)
	FPS        = rate.Limit(getEnvFloat("SNAKE_MAX_FPS", 30))
	LogLevel   = getEnvString("SNAKE_LOG_LEVEL", "info")
	StoreKind  = getEnvString("SNAKE_STORE", StoreFile)
	StoreDSN   = getEnvString("SNAKE_STORE_DSN", "")
)

// Config is the resolved configuration of a snake process.
type Config struct {
	CellSize   int     `yaml:"cell_size"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Difficulty string  `yaml:"difficulty"`
	MaxFPS     float64 `yaml:"max_fps"`
	LogLevel   string  `yaml:"log_level"`
	Store      string  `yaml:"store"`
	StoreDSN   string  `yaml:"store_dsn"`
	SFXVolume  float64 `yaml:"sfx_volume"`
	BGMVolume  float64 `yaml:"bgm_volume"`
	Muted      bool    `yaml:"muted"`
}

// Default returns the configuration described by the environment.
func Default() Config {
	return Config{
		CellSize:   CellSize,
		Width:      Width,
		Height:     Height,
		Difficulty: Difficulty,
		MaxFPS:     float64(FPS),
		LogLevel:   LogLevel,
		Store:      StoreKind,
		StoreDSN:   StoreDSN,
		SFXVolume:  0.3,
		BGMVolume:  0.15,
	}
}

// Load reads path on top of Default. An empty path skips the file. The
// result is validated before it is returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", path)
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parsing config %s", path)
		}
		log.WithField("Path", path).Debug("config file loaded")
	}
	return cfg, cfg.Validate()
}

// Validate checks that the configuration describes a playable setup.
func (c Config) Validate() error {
	if _, err := c.Grid(); err != nil {
		return err
	}
	if _, ok := rules.LookupDifficulty(c.Difficulty); !ok {
		return errors.Errorf("config: unknown difficulty %q", c.Difficulty)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config: log level")
	}
	switch strings.ToLower(c.Store) {
	case StoreMem, StoreFile, StoreRedis, StoreSQLite, StorePostgres:
	default:
		return errors.Errorf("config: unknown store %q", c.Store)
	}
	if c.MaxFPS <= 0 {
		return errors.Errorf("config: max fps must be positive, got %v", c.MaxFPS)
	}
	if c.SFXVolume < 0 || c.SFXVolume > 1 || c.BGMVolume < 0 || c.BGMVolume > 1 {
		return errors.New("config: volumes must be within [0, 1]")
	}
	return nil
}

// Grid derives the board from the canvas size and cell size.
func (c Config) Grid() (rules.Grid, error) {
	g := rules.ComputeGrid(c.Width, c.Height, c.CellSize)
	if err := g.Validate(); err != nil {
		return rules.Grid{}, errors.Wrapf(err, "config: %dx%d canvas with cell size %d", c.Width, c.Height, c.CellSize)
	}
	return g, nil
}

// FPS is the render rate limit.
func (c Config) FPS() rate.Limit { return rate.Limit(c.MaxFPS) }

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvFloat(varName string, defaults float64) float64 {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaults
	}
	return f
}

func getEnvString(varName string, defaults string) string {
	if val := os.Getenv(varName); val != "" {
		return val
	}
	return defaults
}
