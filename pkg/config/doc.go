// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files (or the default `.env`) into the
//     process environment without overriding variables that are already set.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so each type is parsed once per process.
//   - MustLoadEnv and MustLoad panic on failure for start-up code.
//   - ResetCache and ForceReloadConfig discard cached values, mainly for tests.
//
// # Usage
//
//	type CLIConfig struct {
//	    DefaultLocale string `env:"IDCARD_DEFAULT_LOCALE" envDefault:"any"`
//	    LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - ErrParsingConfig   – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile  – an explicitly requested .env file could not be read.
//   - ErrConfigNotLoaded – the cache is empty after a parse.
//   - ErrNilPointer      – nil pointer passed to Load.
//
// The parser error is joined to the sentinel, so its message still names the
// offending variable.
package config
