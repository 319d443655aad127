package logger

import (
	"strings"

	"github.com/kyunghoonkook/directional/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// Desensitizer masks sensitive log fields before formatting
type Desensitizer struct {
	config *config.Desensitization
}

// NewDesensitizer creates a new desensitizer instance
func NewDesensitizer(cfg *config.Desensitization) *Desensitizer {
	return &Desensitizer{config: cfg}
}

func (d *Desensitizer) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire masks entry fields in place
func (d *Desensitizer) Fire(entry *logrus.Entry) error {
	entry.Data = d.DesensitizeFields(entry.Data)
	return nil
}

// DesensitizeFields processes log fields and masks sensitive data
func (d *Desensitizer) DesensitizeFields(fields logrus.Fields) logrus.Fields {
	if !d.config.Enabled {
		return fields
	}

	result := make(logrus.Fields, len(fields))
	for key, value := range fields {
		if d.isSensitiveField(key) && value != nil {
			result[key] = strings.Repeat(d.config.MaskChar, d.config.FixedMaskLength)
			continue
		}
		result[key] = value
	}
	return result
}

// isSensitiveField checks if a field name contains a sensitive pattern
func (d *Desensitizer) isSensitiveField(fieldName string) bool {
	lower := strings.ToLower(fieldName)
	for _, sensitive := range d.config.SensitiveFields {
		if strings.Contains(lower, strings.ToLower(sensitive)) {
			return true
		}
	}
	return false
}
