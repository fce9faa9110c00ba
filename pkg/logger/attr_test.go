package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/idcard/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestSimpleAttrs(t *testing.T) {
	assert.Equal(t, slog.String("component", "cli"), logger.Component("cli"))
	assert.Equal(t, slog.String("event", "validate"), logger.Event("validate"))
	assert.Equal(t, slog.String("locale", "zh-CN"), logger.Locale("zh-CN"))
	assert.Equal(t, slog.Bool("valid", true), logger.Valid(true))
	assert.Equal(t, slog.Int("total", 3), logger.Count("total", 3))
	assert.Equal(t, slog.Duration("duration", time.Second), logger.Duration(time.Second))
}

func TestNumber(t *testing.T) {
	attr := logger.Number("12345678Z")
	assert.Equal(t, "number", attr.Key)
	assert.Equal(t, "12*****8Z", attr.Value.String())

	assert.Equal(t, "29********64", logger.Number("2984 4886 3364").Value.String())
}
