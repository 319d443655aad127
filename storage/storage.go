package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("storage: key not found")

// Store is durable key-value storage for session state. Set and Delete
// apply all given keys together.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
}

// Config config
type Config struct {
	Driver string // memory, file or redis
	Path   string // file driver location
	Redis  *Redis
}

// Redis redis connection options
type Redis struct {
	Addr     string
	Username string
	Password string
	DB       int
	Prefix   string
}

// NewStore new store
func NewStore(c *Config) (Store, error) {
	if c == nil {
		return NewMemoryStore(), nil
	}
	switch c.Driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "file":
		if c.Path == "" {
			return nil, errors.New("storage: file driver requires a path")
		}
		return NewFileStore(c.Path), nil
	case "redis":
		if c.Redis == nil || c.Redis.Addr == "" {
			return nil, errors.New("storage: redis driver requires an address")
		}
		return NewRedisStore(c.Redis), nil
	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", c.Driver)
	}
}

// GetConfig get storage config
func GetConfig(v *viper.Viper) *Config {
	return &Config{
		Driver: v.GetString("storage.driver"),
		Path:   v.GetString("storage.path"),
		Redis: &Redis{
			Addr:     v.GetString("storage.redis.addr"),
			Username: v.GetString("storage.redis.username"),
			Password: v.GetString("storage.redis.password"),
			DB:       v.GetInt("storage.redis.db"),
			Prefix:   v.GetString("storage.redis.prefix"),
		},
	}
}
