// Package logger builds slog loggers for the postcode service and CLI.
//
// New assembles a text or JSON handler from functional options and wraps it
// in LogHandlerDecorator, which copies request-scoped values (such as the
// request id) from the context into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "postcode checked",
//	    logger.Postcode(res.Input),
//	    logger.Valid(res.Valid),
//	    logger.Rule(res.Rule),
//	)
//
// Attribute helpers return an empty slog.Attr for empty input, which slog
// omits, so callers need no nil checks.
package logger
