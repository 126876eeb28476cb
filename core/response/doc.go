// Package response builds handler.Response values for common HTTP replies.
//
// A handler.Response is a deferred writer: handlers return one and the
// router executes it, routing any returned error to the error handler.
//
//	func show(ctx *router.Context) handler.Response {
//		return response.TemplateName(pages, "page", data)
//	}
//
//	func download(ctx *router.Context) handler.Response {
//		return response.Attachment(body, "qrcode.png", "image/png")
//	}
//
// HTMX responses are decorated with WithHTMX:
//
//	return response.WithHTMX(
//		response.TemplateName(pages, "preview", data),
//		response.TriggerEvent("notify", notice),
//	)
//
// Errors are reported as HTTPError values. ErrorHandler renders plain text,
// JSONErrorHandler renders JSON, and HTMXErrorHandler answers HTMX requests
// with an empty body plus a trigger event so the page can show a notice.
package response
