package config

import "github.com/spf13/viper"

// Desensitization holds desensitization settings
type Desensitization struct {
	Enabled         bool     `json:"enabled" yaml:"enabled"`
	SensitiveFields []string `json:"sensitive_fields" yaml:"sensitive_fields"`
	MaskChar        string   `json:"mask_char" yaml:"mask_char"`
	FixedMaskLength int      `json:"fixed_mask_length" yaml:"fixed_mask_length"`
}

// Default sensitive field patterns
var defaultSensitiveFields = []string{
	"password", "token", "auth_token", "authorization", "secret",
}

const (
	defaultMaskChar        = "*"
	defaultFixedMaskLength = 6
)

// getDesensitizationConfigs reads and returns desensitization configuration
func getDesensitizationConfigs(v *viper.Viper) *Desensitization {
	if !v.IsSet("logger.desensitization") {
		return &Desensitization{
			Enabled:         true,
			SensitiveFields: defaultSensitiveFields,
			MaskChar:        defaultMaskChar,
			FixedMaskLength: defaultFixedMaskLength,
		}
	}

	config := &Desensitization{
		Enabled:         v.GetBool("logger.desensitization.enabled"),
		SensitiveFields: v.GetStringSlice("logger.desensitization.sensitive_fields"),
		MaskChar:        v.GetString("logger.desensitization.mask_char"),
		FixedMaskLength: v.GetInt("logger.desensitization.fixed_mask_length"),
	}
	if len(config.SensitiveFields) == 0 {
		config.SensitiveFields = defaultSensitiveFields
	}
	if config.MaskChar == "" {
		config.MaskChar = defaultMaskChar
	}
	if config.FixedMaskLength <= 0 {
		config.FixedMaskLength = defaultFixedMaskLength
	}
	return config
}
