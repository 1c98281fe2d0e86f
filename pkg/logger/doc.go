// Package logger builds structured slog loggers with context extraction and
// optional Sentry reporting.
//
// # Usage
//
//	log := logger.New(logger.Config{Level: "debug", Format: "text"},
//	    func(ctx context.Context) (slog.Attr, bool) {
//	        if id := middlewares.GetRequestID(ctx); id != "" {
//	            return slog.String("request_id", id), true
//	        }
//	        return slog.Attr{}, false
//	    },
//	)
//
// Extractors run on every record, so request-scoped values logged through
// InfoContext and friends are always current.
//
// # Sentry
//
// Setting SentryDSN sends errors to Sentry as issues and keeps warnings and
// errors as searchable Sentry logs. Records still go to Output. When the SDK
// fails to initialize the failure is logged and Output is used alone.
package logger
