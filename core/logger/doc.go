// Package logger builds slog loggers and provides nil-safe attribute helpers.
//
// Loggers are created through a factory with functional options:
//
//	log := logger.New(
//		logger.WithDevelopment("qrstudio"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log := logger.New(
//		logger.WithProduction("qrstudio"),
//		logger.WithContextExtractors(requestIDExtractor),
//	)
//
// Development loggers write text at debug level; production and staging
// loggers write JSON at info level. Context extractors inject request-scoped
// attributes into every *Context call.
//
// Attribute helpers return an empty slog.Attr for nil or empty input, which
// slog drops from output:
//
//	log.ErrorContext(ctx, "export failed",
//		logger.Component("studio"),
//		logger.Format("png"),
//		logger.Error(err),
//	)
package logger
