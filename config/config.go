package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	loggerConfig "github.com/kyunghoonkook/directional/logging/logger/config"
	"github.com/kyunghoonkook/directional/storage"
	"github.com/spf13/viper"
)

var (
	config  *Config
	initErr error
	path    string
	once    sync.Once
	mu      sync.Mutex
	v       = viper.New()
)

// EnvPrefix is the environment override prefix, e.g. DIRECTIONAL_API_BASE_URL
const EnvPrefix = "DIRECTIONAL"

// Config represents the configuration implementation.
type Config struct {
	AppName  string
	RunMode  string
	API      *API
	Query    *Query
	Storage  *storage.Config
	Breaker  *Breaker
	Logger   *loggerConfig.Config
	Observes *Observes
	Mock     *Mock
	Viper    *viper.Viper
}

// Init loads the configuration once from configPath or the search paths.
// A failed first load is remembered and returned by every later call.
func Init(configPath string) (*Config, error) {
	once.Do(func() {
		path = configPath
		cfg, err := LoadConfig(v, path)
		mu.Lock()
		config, initErr = cfg, err
		mu.Unlock()
	})
	mu.Lock()
	defer mu.Unlock()
	if initErr != nil {
		return nil, initErr
	}
	return config, nil
}

// GetConfig returns the configuration.
func GetConfig() (*Config, error) {
	mu.Lock()
	c := config
	mu.Unlock()
	if c != nil {
		return c, nil
	}
	c, err := Init(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return c, nil
}

// LoadConfig reads configPath into vp and builds the configuration.
// Without an explicit path a missing config file is not an error.
func LoadConfig(vp *viper.Viper, configPath string) (*Config, error) {
	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if configPath != "" {
		vp.SetConfigFile(configPath)
	} else {
		vp.SetConfigName("config")
		vp.AddConfigPath("/etc/directional")
		vp.AddConfigPath("$HOME/.directional")
		vp.AddConfigPath(".")
	}

	if err := vp.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return FromViper(vp), nil
}

// FromViper builds the configuration from an already populated viper instance.
func FromViper(vp *viper.Viper) *Config {
	return &Config{
		AppName:  getStringOrDefault(vp, "app_name", "directional"),
		RunMode:  getStringOrDefault(vp, "run_mode", "release"),
		API:      getAPIConfig(vp),
		Query:    getQueryConfig(vp),
		Storage:  getStorageConfig(vp),
		Breaker:  getBreakerConfig(vp),
		Logger:   loggerConfig.GetConfig(vp),
		Observes: getObservesConfig(vp),
		Mock:     getMockConfig(vp),
		Viper:    vp,
	}
}

// Reload reloads the configuration from the file.
func Reload() error {
	mu.Lock()
	defer mu.Unlock()

	newConfig, err := LoadConfig(v, path)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	config = newConfig
	initErr = nil
	return nil
}

// Watch watches the configuration file and reloads it when it changes.
func Watch(callback func(*Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if err := Reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reloading config: %v\n", err)
			return
		}
		mu.Lock()
		c := config
		mu.Unlock()
		callback(c)
	})
	v.WatchConfig()
}

// IsDebug reports whether the run mode is debug
func (c *Config) IsDebug() bool {
	return c.RunMode == "debug"
}

// defaultStoragePath is where file storage keeps the session
func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".directional", "session.json")
	}
	return filepath.Join(home, ".directional", "session.json")
}
