package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group bundles attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors by position. All nil yields an empty Attr.
func Errors(errs ...error) slog.Attr {
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Latency(d time.Duration) slog.Attr {
	return slog.Duration("latency", d)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Method(method string) slog.Attr {
	return slog.String("method", method)
}

func Path(path string) slog.Attr {
	return slog.String("path", path)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

func UserAgent(ua string) slog.Attr {
	if ua == "" {
		return slog.Attr{}
	}
	return slog.String("user_agent", ua)
}

func BytesOut(n int64) slog.Attr {
	return slog.Int64("bytes_out", n)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Action(action string) slog.Attr {
	return slog.String("action", action)
}

func Count(key string, n int64) slog.Attr {
	return slog.Int64(key, n)
}

// Format records an export format name.
func Format(name string) slog.Attr {
	return slog.String("format", name)
}

// Filename records an artifact filename.
func Filename(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("filename", name)
}

// PayloadLen records the payload length in bytes. The payload itself is
// never logged.
func PayloadLen(payload string) slog.Attr {
	return slog.Int("payload_len", len(payload))
}
