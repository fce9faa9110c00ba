package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/idcard/pkg/idcard"
	"github.com/dmitrymomot/idcard/pkg/logger"
)

const serviceName = "idcard"

// Config is read from the environment; command line flags override it.
type Config struct {
	DefaultLocale string `env:"IDCARD_DEFAULT_LOCALE" envDefault:"any"`
	BatchWorkers  int    `env:"IDCARD_BATCH_WORKERS" envDefault:"4"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text"`
	Environment   string `env:"APP_ENV" envDefault:"development"`
}

// Options is shared by every command.
type Options struct {
	cfg      Config
	version  string
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	registry *idcard.Registry
	log      *slog.Logger
}

// NewOptions creates command options backed by the default locale registry.
func NewOptions(cfg Config, version string, in io.Reader, out, errOut io.Writer) *Options {
	return &Options{
		cfg:      cfg,
		version:  version,
		in:       in,
		out:      out,
		errOut:   errOut,
		registry: idcard.Default(),
		log:      slog.New(slog.DiscardHandler),
	}
}

// setupLogger builds the logger once flags have been parsed.
func (o *Options) setupLogger() error {
	level, err := logger.ParseLevel(o.cfg.LogLevel)
	if err != nil {
		return NewUsageError(err)
	}
	format, err := logger.ParseFormat(o.cfg.LogFormat)
	if err != nil {
		return NewUsageError(err)
	}

	o.log = logger.New(
		logger.WithOutput(o.errOut),
		logger.WithEnvironment(o.cfg.Environment, serviceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	return nil
}

// checkLocale rejects locales the registry cannot dispatch.
func (o *Options) checkLocale(locale string) error {
	if o.registry.IsSupported(locale) {
		return nil
	}
	return NewUsageError(fmt.Errorf("%w (supported: %s, any)",
		&idcard.InvalidLocaleError{Locale: locale}, joinLocales(o.registry.Locales()),
	))
}
