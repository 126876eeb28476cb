// Package middleware provides handler.Middleware implementations shared by
// every route of the studio.
//
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.ClientIP[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//		middleware.SecurityHeaders[*router.Context](),
//	)
//
// Values stored by RequestID and ClientIP are read back with GetRequestID and
// GetClientIP. Logging picks up both when present.
package middleware
