// Package logger builds *slog.Logger values with per-environment defaults and
// attributes pulled from the request context.
//
// New applies Option values, picks a text or JSON handler and, when context
// extractors are registered, runs them on each record. The request id
// extractor lives next to the value it reads (pkg/requestid); the
// environment and service name are static attributes.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env.String(), cfg.Name),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "contact form submitted",
//	    logger.Outcome("rejected"),
//	    logger.Field("email"),
//	    logger.Violations(2),
//	)
//
// Attribute helpers keep key names consistent. Helpers taking an error or an
// optional id return an empty slog.Attr for nil input, which slog drops.
package logger
