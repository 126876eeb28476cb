// Package handler defines the request-handling contracts shared by the router,
// middleware and response packages.
//
// Handlers are generic over the context type and return a deferred Response
// instead of writing directly:
//
//	func hello(ctx *router.Context) handler.Response {
//		return response.String("hello " + ctx.Param("name"))
//	}
//
// Middleware wraps handlers and may decorate the returned Response:
//
//	func timing[C handler.Context](next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//		return func(ctx C) handler.Response {
//			start := time.Now()
//			resp := next(ctx)
//			return func(w http.ResponseWriter, r *http.Request) error {
//				w.Header().Set("X-Elapsed", time.Since(start).String())
//				return resp(w, r)
//			}
//		}
//	}
package handler
