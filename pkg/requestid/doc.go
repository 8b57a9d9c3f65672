// Package requestid tags every HTTP request with a correlation identifier.
//
// Middleware reuses a well-formed X-Request-ID header supplied by the client
// (or an upstream proxy) and otherwise generates a UUIDv4. The identifier is
// echoed back in the response header, stored on the request context and made
// available to the logger through LoggerExtractor, so every log line written
// while serving a contact submission carries the same request_id.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
