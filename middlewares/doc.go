// Package middlewares provides HTTP middleware for the postboard app.
//
// # Request ID
//
// RequestID keeps an ID sent by a proxy or generates a UUID, stores it in
// the request context and echoes it in X-Request-ID. Pair it with
// RequestIDExtractor so every log record carries request_id:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover turns handler panics into *PanicError values for the error
// handler, which renders them as 500 responses.
//
// # Request logging
//
// RequestLogger writes one record per request with method, path, status,
// bytes and duration. Health probes can be left out with WithSkipPaths.
//
// # Order
//
//	internal.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.RequestLogger(middlewares.WithSkipPaths("/health/live", "/health/ready")),
//	    middlewares.Recover(),
//	)
//
// RequestID runs first so the other two log with the ID; Recover runs last
// so the logger sees the status of the rendered panic response.
package middlewares
