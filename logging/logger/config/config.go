package config

import (
	"github.com/spf13/viper"
)

// Config configuration struct
type Config struct {
	Level           int              `json:"level" yaml:"level"`
	Format          string           `json:"format" yaml:"format"`
	Output          string           `json:"output" yaml:"output"`
	OutputFile      string           `json:"output_file" yaml:"output_file"`
	SentryDSN       string           `json:"sentry_dsn" yaml:"sentry_dsn"`
	Desensitization *Desensitization `json:"desensitization" yaml:"desensitization"`
}

// Default logrus level is warn so CLI output stays quiet
const defaultLevel = 3

// GetConfig returns the logger configuration
func GetConfig(v *viper.Viper) *Config {
	level := defaultLevel
	if v.IsSet("logger.level") {
		level = v.GetInt("logger.level")
	}
	output := "stderr"
	if v.IsSet("logger.output") {
		output = v.GetString("logger.output")
	}

	return &Config{
		Level:           level,
		Format:          v.GetString("logger.format"),
		Output:          output,
		OutputFile:      v.GetString("logger.output_file"),
		SentryDSN:       v.GetString("observes.sentry_dsn"),
		Desensitization: getDesensitizationConfigs(v),
	}
}
