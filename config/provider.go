package config

import (
	"github.com/google/wire"
	loggerConfig "github.com/kyunghoonkook/directional/logging/logger/config"
	"github.com/kyunghoonkook/directional/storage"
)

// ProviderSet is the wire provider set for the config package.
// It extracts the sections from a *Config supplied by the injector, so
// commands can load the file from their own --conf flag.
var ProviderSet = wire.NewSet(
	ProvideAPIConfig,
	ProvideQueryConfig,
	ProvideStorageConfig,
	ProvideBreakerConfig,
	ProvideLoggerConfig,
	ProvideObservesConfig,
)

// ProvideAPIConfig provides the remote api configuration.
func ProvideAPIConfig(cfg *Config) *API {
	if cfg == nil || cfg.API == nil {
		return &API{}
	}
	return cfg.API
}

// ProvideQueryConfig provides the query cache configuration.
func ProvideQueryConfig(cfg *Config) *Query {
	if cfg == nil || cfg.Query == nil {
		return &Query{}
	}
	return cfg.Query
}

// ProvideStorageConfig provides the session storage configuration.
func ProvideStorageConfig(cfg *Config) *storage.Config {
	if cfg == nil {
		return nil
	}
	return cfg.Storage
}

// ProvideBreakerConfig provides the circuit breaker configuration.
func ProvideBreakerConfig(cfg *Config) *Breaker {
	if cfg == nil || cfg.Breaker == nil {
		return &Breaker{}
	}
	return cfg.Breaker
}

// ProvideLoggerConfig provides the logger configuration.
func ProvideLoggerConfig(cfg *Config) *loggerConfig.Config {
	if cfg == nil {
		return nil
	}
	return cfg.Logger
}

// ProvideObservesConfig provides the tracing and error reporting configuration.
func ProvideObservesConfig(cfg *Config) *Observes {
	if cfg == nil || cfg.Observes == nil {
		return &Observes{}
	}
	return cfg.Observes
}
