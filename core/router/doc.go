// Package router maps HTTP routes to typed handlers on top of gorilla/mux.
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.ErrorHandler[*router.Context]),
//	)
//	r.Use(middleware.RequestID[*router.Context]())
//	r.Get("/items/{id}", func(ctx *router.Context) handler.Response {
//		return response.String(ctx.Param("id"))
//	})
//	http.ListenAndServe(":8080", r)
//
// Patterns use gorilla/mux syntax. Middleware registered with Use applies to
// every route, including ones registered earlier. Unknown paths, disallowed
// methods, nil responses, response errors and panics all go to the error
// handler.
package router
