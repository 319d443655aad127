package logger

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryHook ships error level entries to sentry
type SentryHook struct {
	hub *sentry.Hub
}

// NewSentryHook initializes the sentry client and returns a hook bound to it
func NewSentryHook(dsn, release string) (*SentryHook, error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		AttachStacktrace: true,
		Release:          release,
	}); err != nil {
		return nil, err
	}
	return &SentryHook{hub: sentry.CurrentHub()}, nil
}

func (h *SentryHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	h.hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range entry.Data {
			scope.SetExtra(k, v)
		}
		if err, ok := entry.Data[logrus.ErrorKey].(error); ok {
			h.hub.CaptureException(err)
			return
		}
		h.hub.CaptureException(errors.New(entry.Message))
	})
	return nil
}

func flushSentry() {
	if sentry.CurrentHub().Client() != nil {
		sentry.Flush(2 * time.Second)
	}
}
