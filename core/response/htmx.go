package response

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dmitrymomot/qrstudio/core/handler"
)

// HTMX response headers.
const (
	HeaderHXTrigger            = "HX-Trigger"
	HeaderHXTriggerAfterSettle = "HX-Trigger-After-Settle"
	HeaderHXReswap             = "HX-Reswap"
	HeaderHXRetarget           = "HX-Retarget"
	HeaderHXRefresh            = "HX-Refresh"
	HeaderHXRedirect           = "HX-Redirect"
)

// HTMX request headers.
const (
	HeaderHXRequest = "HX-Request"
	HeaderHXTarget  = "HX-Target"
)

// HTMXOption configures headers added by WithHTMX.
type HTMXOption func(*htmxConfig)

type htmxConfig struct {
	trigger            map[string]any
	triggerAfterSettle map[string]any
	reswap             string
	retarget           string
	refresh            bool
	redirect           string
}

// WithHTMX decorates response with HTMX response headers.
func WithHTMX(response handler.Response, opts ...HTMXOption) handler.Response {
	if response == nil || len(opts) == 0 {
		return response
	}

	cfg := &htmxConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		h := w.Header()
		setJSONHeader(h, HeaderHXTrigger, cfg.trigger)
		setJSONHeader(h, HeaderHXTriggerAfterSettle, cfg.triggerAfterSettle)
		if cfg.reswap != "" {
			h.Set(HeaderHXReswap, cfg.reswap)
		}
		if cfg.retarget != "" {
			h.Set(HeaderHXRetarget, cfg.retarget)
		}
		if cfg.refresh {
			h.Set(HeaderHXRefresh, "true")
		}
		if cfg.redirect != "" {
			h.Set(HeaderHXRedirect, cfg.redirect)
		}
		return response(w, r)
	}
}

func setJSONHeader(h http.Header, key string, events map[string]any) {
	if len(events) == 0 {
		return
	}
	if data, err := json.Marshal(events); err == nil {
		h.Set(key, string(data))
	}
}

// TriggerEvent fires a client-side event with detail as soon as the response arrives.
func TriggerEvent(name string, detail any) HTMXOption {
	return func(cfg *htmxConfig) {
		if cfg.trigger == nil {
			cfg.trigger = make(map[string]any)
		}
		cfg.trigger[name] = detail
	}
}

// TriggerAfterSettle fires a client-side event once the swap has settled.
func TriggerAfterSettle(name string, detail any) HTMXOption {
	return func(cfg *htmxConfig) {
		if cfg.triggerAfterSettle == nil {
			cfg.triggerAfterSettle = make(map[string]any)
		}
		cfg.triggerAfterSettle[name] = detail
	}
}

// Reswap overrides the swap strategy.
func Reswap(method string, modifiers ...string) HTMXOption {
	return func(cfg *htmxConfig) {
		cfg.reswap = strings.TrimSpace(method + " " + strings.Join(modifiers, " "))
	}
}

// Retarget overrides the swap target.
func Retarget(selector string) HTMXOption {
	return func(cfg *htmxConfig) { cfg.retarget = selector }
}

// Refresh asks the client to reload the page.
func Refresh() HTMXOption {
	return func(cfg *htmxConfig) { cfg.refresh = true }
}

// Redirect makes the client navigate to url with a full page load.
func Redirect(url string) HTMXOption {
	return func(cfg *htmxConfig) { cfg.redirect = url }
}

// IsHTMXRequest reports whether r was issued by htmx.
func IsHTMXRequest(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}
