// Package middleware provides the HTTP middleware chain for the guidance
// proxy: CORS, shared-secret authentication, request IDs, structured
// request logging, panic recovery, and per-request timeouts.
//
// Middleware composes outermost-first:
//
//	handler = RecoveryMiddleware(
//	    RequestIDMiddleware(
//	        LoggingMiddleware(
//	            CORSMiddleware(corsConfig)(
//	                SecretMiddleware(secretFn)(
//	                    TimeoutMiddleware(timeout)(mux))))))
//
// CORS sits outside the secret gate so preflight requests are answered
// without authentication, and the secret gate applies only to POST so
// every other method is rejected by the handlers' method gates rather
// than by authentication.
package middleware
