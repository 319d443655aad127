package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/kyunghoonkook/directional/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// Key constants
const (
	VersionKey = "version"
)

// Logger represents logger instance
type Logger struct {
	*logrus.Logger
	version string
	logFile *os.File
}

var (
	// stdLogger is the global logger
	stdLogger *Logger
	// once ensures that the logger is initialized only once
	once sync.Once
)

// StdLogger returns the single logger instance
func StdLogger() *Logger {
	once.Do(func() {
		stdLogger = &Logger{
			Logger: logrus.New(),
		}
		stdLogger.SetOutput(os.Stderr)
		stdLogger.SetLevel(logrus.WarnLevel)
		stdLogger.SetFormatter(&logrus.TextFormatter{})
	})
	return stdLogger
}

// New initializes the standard logger, returning its cleanup function
func New(c *config.Config) (func(), error) {
	return StdLogger().Init(c)
}

// SetVersion sets the version for logging
func (l *Logger) SetVersion(v string) {
	l.version = v
}

// Init initializes the logger with the given configuration
func (l *Logger) Init(c *config.Config) (func(), error) {
	if c == nil {
		return func() {}, nil
	}
	l.SetLevel(logrus.Level(c.Level))
	l.ReplaceHooks(make(logrus.LevelHooks))

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{})
	}

	switch c.Output {
	case "stdout":
		l.SetOutput(os.Stdout)
	case "stderr", "":
		l.SetOutput(os.Stderr)
	case "file":
		if c.OutputFile == "" {
			return nil, fmt.Errorf("logger output is file but output_file is empty")
		}
		if err := l.openLogFile(c.OutputFile); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported logger output %q", c.Output)
	}

	if c.Desensitization != nil && c.Desensitization.Enabled {
		l.AddHook(NewDesensitizer(c.Desensitization))
	}

	if c.SentryDSN != "" {
		hook, err := NewSentryHook(c.SentryDSN, l.version)
		if err != nil {
			return nil, fmt.Errorf("error initializing sentry hook: %w", err)
		}
		l.AddHook(hook)
	}

	// Return cleanup function
	return func() {
		flushSentry()
		if l.logFile != nil {
			_ = l.logFile.Close()
			l.logFile = nil
		}
	}, nil
}

// openLogFile sets up the log file
func (l *Logger) openLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.logFile = f
	l.SetOutput(f)
	return nil
}

// entryFromContext creates a new log entry with fields from context
func (l *Logger) entryFromContext(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}

	if traceID := getTraceID(ctx); traceID != "" {
		fields[traceKey] = traceID
	}
	if l.version != "" {
		fields[VersionKey] = l.version
	}

	return l.WithContext(ctx).WithFields(fields)
}

// EntryWithFields returns an entry carrying ctx fields and the given fields
func (l *Logger) EntryWithFields(ctx context.Context, fields logrus.Fields) *logrus.Entry {
	return l.entryFromContext(ctx).WithFields(fields)
}

func (l *Logger) Debugf(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Debugf(format, args...)
}
func (l *Logger) Infof(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Infof(format, args...)
}
func (l *Logger) Warnf(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Warnf(format, args...)
}
func (l *Logger) Errorf(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Errorf(format, args...)
}

// SetOutput sets the output destination for the logger
func (l *Logger) SetOutput(out io.Writer) {
	l.Logger.SetOutput(out)
}

// Exported functions for the standard logger

func SetVersion(v string) { StdLogger().SetVersion(v) }

func EntryWithFields(ctx context.Context, fields logrus.Fields) *logrus.Entry {
	return StdLogger().EntryWithFields(ctx, fields)
}

func Debugf(ctx context.Context, format string, args ...any) {
	StdLogger().Debugf(ctx, format, args...)
}
func Infof(ctx context.Context, format string, args ...any) {
	StdLogger().Infof(ctx, format, args...)
}
func Warnf(ctx context.Context, format string, args ...any) {
	StdLogger().Warnf(ctx, format, args...)
}
func Errorf(ctx context.Context, format string, args ...any) {
	StdLogger().Errorf(ctx, format, args...)
}

// SetLevel changes the level of the standard logger
func SetLevel(level int) { StdLogger().SetLevel(logrus.Level(level)) }
