package logger

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/idcard/pkg/sanitizer"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Locale records an identity-card locale under the key "locale".
func Locale(locale string) slog.Attr {
	return slog.String("locale", locale)
}

// Number records an identity number under the key "number", masked so the
// full value never reaches the logs.
func Number(id string) slog.Attr {
	return slog.String("number", sanitizer.MaskIdentifier(id))
}

// Valid records a validation verdict under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Count records a quantity under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
