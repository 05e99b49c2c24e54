// Package logger provides a context-aware wrapper around Go's slog package
// with functional options and attribute helpers for classification events.
//
// New builds a *slog.Logger from Option values:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the handler.
//   - WithLevel / ParseLevel set the minimum level.
//   - WithOutput redirects output (stderr by default, so stdout stays clean
//     for command results).
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes from the
//     context on every record.
//
// The handler returned by the chosen format is wrapped in LogHandlerDecorator,
// which runs the extractors before delegating.
//
// attr.go holds constructors for the attribute keys used across the module
// (input, category, brand, valid, error) so that log lines stay consistent.
//
//	log := logger.New(logger.WithTextFormatter(), logger.WithLevel(slog.LevelDebug))
//	log.Debug("classified", logger.Category("card"), logger.Brand("Visa"), logger.Valid(true))
package logger
