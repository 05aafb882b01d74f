// Package middlewares provides HTTP middleware for AriaML applications.
//
// # Request ID
//
// RequestID tags each request with an ID, keeping one sent by an upstream
// proxy. Combine it with RequestIDExtractor to get request_id in every log line:
//
//	log := logger.New(logger.WithExtractors(middlewares.RequestIDExtractor()))
//	app := ariaml.New(
//	    ariaml.WithLogger(log),
//	    ariaml.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns panics into a PanicError for the app's ErrorHandler:
//
//	ariaml.WithErrorHandler(func(c ariaml.Context, err error) error {
//	    if middlewares.IsPanicError(err) {
//	        return c.String(http.StatusInternalServerError, "Internal Server Error")
//	    }
//	    return ariaml.DefaultErrorHandler(c, err)
//	})
//
// # Access log
//
// AccessLog writes one entry per request with method, path, status,
// negotiated mode, body size and duration. Register it after RequestID so the
// entry carries the request ID.
package middlewares
