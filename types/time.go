package types

import (
	"errors"
	"time"
)

var timeFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006.01.02",
	"2006/01/02",
	"20060102",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseLocalTime parse to local time
func ParseLocalTime(str string) (t time.Time, err error) {
	location := time.Now().Location()
	for _, format := range timeFormats {
		t, err = time.ParseInLocation(format, str, location)
		if err == nil {
			return
		}
	}
	err = errors.New("can't parse string as time: " + str)
	return
}

const timeLayout = "2006-01-02 15:04"

// FormatTime format time to string
func FormatTime(t time.Time, layout ...string) string {
	if t.IsZero() {
		return ""
	}
	l := timeLayout
	if len(layout) > 0 && layout[0] != "" {
		l = layout[0]
	}
	return t.Local().Format(l)
}
