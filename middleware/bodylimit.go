package middleware

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/qrstudio/core/handler"
	"github.com/dmitrymomot/qrstudio/core/response"
)

// Size units for BodyLimit.
const (
	KB int64 = 1024
	MB       = 1024 * KB
)

// BodyLimit rejects requests whose declared Content-Length exceeds maxSize
// with 413 and caps the body reader at maxSize for the rest.
func BodyLimit[C handler.Context](maxSize int64) handler.Middleware[C] {
	if maxSize <= 0 {
		maxSize = MB
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			req := ctx.Request()
			if req.ContentLength > maxSize {
				return response.Error(response.ErrRequestEntityTooLarge.
					WithMessage(fmt.Sprintf("Request body too large. Maximum allowed: %d bytes", maxSize)).
					WithDetails(map[string]any{"limit": maxSize, "size": req.ContentLength}))
			}
			if req.Body != nil {
				req.Body = http.MaxBytesReader(ctx.ResponseWriter(), req.Body, maxSize)
			}
			return next(ctx)
		}
	}
}
