package config

import (
	"time"

	"github.com/kyunghoonkook/directional/consts"
	"github.com/kyunghoonkook/directional/storage"
	"github.com/spf13/viper"
)

// API remote board api settings
type API struct {
	BaseURL   string        `json:"base_url" yaml:"base_url"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	LoginPath string        `json:"login_path" yaml:"login_path"`
}

func getAPIConfig(v *viper.Viper) *API {
	return &API{
		BaseURL:   getStringOrDefault(v, "api.base_url", consts.DefaultBaseURL),
		Timeout:   getDurationOrDefault(v, "api.timeout", consts.DefaultTimeout),
		LoginPath: getStringOrDefault(v, "api.login_path", consts.LoginPath),
	}
}

// Query cache and retry settings
type Query struct {
	Retry         int           `json:"retry" yaml:"retry"`
	RetryDelay    time.Duration `json:"retry_delay" yaml:"retry_delay"`
	ListStaleTime time.Duration `json:"list_stale_time" yaml:"list_stale_time"`
}

func getQueryConfig(v *viper.Viper) *Query {
	return &Query{
		Retry:         getIntOrDefault(v, "query.retry", 1),
		RetryDelay:    getDurationOrDefault(v, "query.retry_delay", time.Second),
		ListStaleTime: getDurationOrDefault(v, "query.list_stale_time", 30*time.Second),
	}
}

func getStorageConfig(v *viper.Viper) *storage.Config {
	c := storage.GetConfig(v)
	if c.Driver == "" {
		c.Driver = "file"
	}
	if c.Driver == "file" && c.Path == "" {
		c.Path = defaultStoragePath()
	}
	return c
}

// Breaker circuit breaker settings
type Breaker struct {
	Enabled     bool          `json:"enabled" yaml:"enabled"`
	MaxRequests uint32        `json:"max_requests" yaml:"max_requests"`
	Interval    time.Duration `json:"interval" yaml:"interval"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

func getBreakerConfig(v *viper.Viper) *Breaker {
	return &Breaker{
		Enabled:     getBoolOrDefault(v, "breaker.enabled", false),
		MaxRequests: getUint32OrDefault(v, "breaker.max_requests", 3),
		Interval:    getDurationOrDefault(v, "breaker.interval", 60*time.Second),
		Timeout:     getDurationOrDefault(v, "breaker.timeout", 30*time.Second),
	}
}

// Observes tracing and error reporting settings
type Observes struct {
	SentryDSN    string  `json:"sentry_dsn" yaml:"sentry_dsn"`
	TracerURL    string  `json:"tracer_url" yaml:"tracer_url"`
	SamplingRate float64 `json:"sampling_rate" yaml:"sampling_rate"`
}

func getObservesConfig(v *viper.Viper) *Observes {
	return &Observes{
		SentryDSN:    v.GetString("observes.sentry_dsn"),
		TracerURL:    v.GetString("observes.tracer_url"),
		SamplingRate: getFloat64OrDefault(v, "observes.sampling_rate", 1.0),
	}
}

// Mock local mock server settings
type Mock struct {
	Addr string `json:"addr" yaml:"addr"`
	Seed bool   `json:"seed" yaml:"seed"`
}

func getMockConfig(v *viper.Viper) *Mock {
	return &Mock{
		Addr: getStringOrDefault(v, "mock.addr", "127.0.0.1:8080"),
		Seed: getBoolOrDefault(v, "mock.seed", true),
	}
}
