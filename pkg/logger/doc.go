// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers for identity-card validation events.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and, when ContextExtractor callbacks are registered, wraps it in a
// handler that runs them on every record. That is how per-run values such
// as a batch run ID reach every log line without being passed explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithEnvironment("production", "idcard"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "validated",
//	    logger.Locale("ES"),
//	    logger.Number(input), // masked: 12*****8Z
//	    logger.Valid(ok),
//	)
//
// Output goes to stderr by default so it never mixes with command output on
// stdout.
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
