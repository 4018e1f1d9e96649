// Package logging builds the zerolog loggers used across cardlist and carries
// them, together with a per-invocation trace ID, through context.Context.
//
// Typical use from a command:
//
//	result := logging.NewLoggerWithPath(cfg)
//	defer result.Close()
//	ctx = logging.ContextWithTraceID(ctx, logging.GetOrGenerateTraceID(ctx))
//	ctx = result.Logger.WithContext(ctx)
//	logging.FromContext(ctx).Info().Msg("started")
package logging
