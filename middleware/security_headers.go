package middleware

import (
	"net/http"

	"github.com/dmitrymomot/qrstudio/core/handler"
)

// SecurityHeadersConfig lists the headers set on every response.
// Empty values are skipped.
type SecurityHeadersConfig struct {
	ContentTypeOptions    string
	FrameOptions          string
	ContentSecurityPolicy string
	ReferrerPolicy        string
	PermissionsPolicy     string
}

// StudioSecurity allows the inline data: preview images and the htmx script
// served by the page itself.
var StudioSecurity = SecurityHeadersConfig{
	ContentTypeOptions:    "nosniff",
	FrameOptions:          "DENY",
	ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline' https://unpkg.com; style-src 'self' 'unsafe-inline'; img-src 'self' data:",
	ReferrerPolicy:        "no-referrer",
	PermissionsPolicy:     "camera=(), microphone=(), geolocation=()",
}

// SecurityHeaders applies StudioSecurity.
func SecurityHeaders[C handler.Context]() handler.Middleware[C] {
	return SecurityHeadersWithConfig[C](StudioSecurity)
}

func SecurityHeadersWithConfig[C handler.Context](cfg SecurityHeadersConfig) handler.Middleware[C] {
	headers := map[string]string{
		"X-Content-Type-Options":  cfg.ContentTypeOptions,
		"X-Frame-Options":         cfg.FrameOptions,
		"Content-Security-Policy": cfg.ContentSecurityPolicy,
		"Referrer-Policy":         cfg.ReferrerPolicy,
		"Permissions-Policy":      cfg.PermissionsPolicy,
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			resp := next(ctx)
			if resp == nil {
				return nil
			}
			return func(w http.ResponseWriter, r *http.Request) error {
				for k, v := range headers {
					if v != "" {
						w.Header().Set(k, v)
					}
				}
				return resp(w, r)
			}
		}
	}
}
