// Package logger builds slog loggers and provides attribute helpers.
//
//	log := logger.New("debug", "json", os.Stderr)
//	log.Info("validation finished",
//		logger.Component("brdoc"),
//		logger.Count("invalid", 2),
//		logger.Elapsed(start),
//	)
//
// Helpers return an empty slog.Attr for nil or zero input, and slog skips
// empty attributes, so logger.Error(err) is safe when err is nil.
package logger
