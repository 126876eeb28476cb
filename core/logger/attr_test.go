package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrstudio/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestEmptyValuesAreDropped(t *testing.T) {
	t.Parallel()
	for name, attr := range map[string]slog.Attr{
		"request_id": logger.RequestID(""),
		"client_ip":  logger.ClientIP(""),
		"user_agent": logger.UserAgent(""),
		"filename":   logger.Filename(""),
	} {
		assert.True(t, attr.Equal(slog.Attr{}), name)
	}
}

func TestHTTPAttrs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "GET", logger.Method("GET").Value.String())
	assert.Equal(t, "/preview", logger.Path("/preview").Value.String())
	assert.Equal(t, int64(422), logger.StatusCode(422).Value.Int64())
	assert.Equal(t, "203.0.113.1", logger.ClientIP("203.0.113.1").Value.String())
	assert.Equal(t, int64(512), logger.BytesOut(512).Value.Int64())
	assert.Equal(t, "req-1", logger.RequestID("req-1").Value.String())
	assert.Equal(t, 3*time.Millisecond, logger.Latency(3*time.Millisecond).Value.Duration())
	assert.Equal(t, "duration", logger.Duration(time.Second).Key)
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "svg", logger.Format("svg").Value.String())
	assert.Equal(t, "qrcode-1.png", logger.Filename("qrcode-1.png").Value.String())

	attr := logger.PayloadLen("hello")
	assert.Equal(t, "payload_len", attr.Key)
	assert.Equal(t, int64(5), attr.Value.Int64())

	assert.Equal(t, "studio", logger.Component("studio").Value.String())
	assert.Equal(t, "download", logger.Action("download").Value.String())
	assert.Equal(t, int64(9), logger.Count("total", 9).Value.Int64())
}
