package health

import (
	"github.com/dmitrymomot/qrstudio/core/handler"
	"github.com/dmitrymomot/qrstudio/core/response"
)

// Liveness reports that the process is up. It never checks dependencies.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}
