package logger

import "errors"

var (
	// ErrInvalidLevel is returned by ParseLevel for unknown level names.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidFormat is returned by ParseFormat for unknown format names.
	ErrInvalidFormat = errors.New("invalid log format")
)
