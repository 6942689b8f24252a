package redisstore

import (
	"context"
	"strconv"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultKey is the redis key the high score lives under.
const DefaultKey = "snake:highscore"

// saveScript replaces KEYS[1] with ARGV[1] when the candidate is higher.
// A missing or non numeric value counts as 0, as in readScore.
var saveScript = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[1]))
if current == nil or current < 0 or current % 1 ~= 0 then
	current = 0
end
if tonumber(ARGV[1]) <= current then
	return 0
end
redis.call("SET", KEYS[1], ARGV[1])
return 1
`)

// RedisStore keeps the high score in a single redis key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
// Returns a new instance OR an error if unable (meaning an issue connecting to your redis URL)
func NewRedisStore(connectURL, key string) (*RedisStore, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		client.Close()
		return nil, errors.Wrap(err, "unable to connect")
	}

	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{client: client, key: key}, nil
}

// GetHighScore reads the stored high score. A missing or non numeric value
// reads as 0.
func (rs *RedisStore) GetHighScore(ctx context.Context) (int, error) {
	return readScore(rs.client.WithContext(ctx), rs.key)
}

// SaveHighScore stores candidate if it beats the current value. The compare
// and the write run as one script on the server, so concurrent writers can
// never replace a higher score with a lower one.
func (rs *RedisStore) SaveHighScore(ctx context.Context, candidate int) (bool, error) {
	res, err := saveScript.Run(rs.client.WithContext(ctx), []string{rs.key}, candidate).Result()
	if err != nil {
		return false, errors.Wrap(err, "unable to save high score")
	}
	saved, ok := res.(int64)
	if !ok {
		return false, errors.Errorf("unexpected save reply %v", res)
	}
	if saved == 1 {
		log.WithField("Score", candidate).Debug("high score saved")
	}
	return saved == 1, nil
}

// Close closes the underlying redis client.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

type getter interface {
	Get(key string) *redis.StringCmd
}

func readScore(c getter, key string) (int, error) {
	v, err := c.Get(key).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to read high score")
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.WithField("Value", v).Warn("high score in redis is not a number, treating it as 0")
		return 0, nil
	}
	return n, nil
}
