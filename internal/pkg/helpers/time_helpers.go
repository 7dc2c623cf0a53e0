package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

const (
	isoSeconds      = "2006-01-02T15:04:05"
	isoMicroseconds = "2006-01-02T15:04:05.000000"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ISOFormat renders t in UTC as a zone-less ISO-8601 timestamp. Microseconds
// are printed only when non-zero; anything finer is truncated.
func ISOFormat(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(isoSeconds)
	}
	return t.Format(isoMicroseconds)
}
