package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/qrstudio/core/handler"
)

// statusCode lets errors choose their HTTP status.
type statusCode interface {
	StatusCode() int
}

func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	base, ok := httpErrorsByStatus[status]
	if !ok {
		base = ErrInternalServerError
	}
	return base.WithError(err)
}

// ErrorHandler renders errors as plain text.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler renders errors as JSON.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}

// HTMXErrorHandler answers HTMX requests with the error status, no body and
// an HX-Trigger event named event whose detail is {"title","description"}.
// Other requests fall back to ErrorHandler.
func HTMXErrorHandler[C handler.Context](event string) handler.ErrorHandler[C] {
	return func(ctx C, err error) {
		if !IsHTMXRequest(ctx.Request()) {
			ErrorHandler(ctx, err)
			return
		}
		httpErr := convertToHTTPError(err)
		Render(ctx, WithHTMX(
			Status(httpErr.Status),
			TriggerEvent(event, map[string]string{
				"title":       http.StatusText(httpErr.Status),
				"description": httpErr.Message,
				"variant":     "destructive",
			}),
		))
	}
}
