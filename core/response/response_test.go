package response_test

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrstudio/core/handler"
	"github.com/dmitrymomot/qrstudio/core/response"
	"github.com/dmitrymomot/qrstudio/core/router"
)

func run(t *testing.T, resp handler.Response) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, resp(w, r))
	return w
}

func TestBaseResponses(t *testing.T) {
	t.Parallel()

	w := run(t, response.String("hi"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "hi", w.Body.String())

	w = run(t, response.StringWithStatus("bad", http.StatusBadRequest))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = run(t, response.HTML("<b>x</b>"))
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	w = run(t, response.Bytes([]byte{1, 2}, "application/octet-stream"))
	assert.Equal(t, []byte{1, 2}, w.Body.Bytes())

	w = run(t, response.NoContent())
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = run(t, response.Status(0))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	w := run(t, response.JSON(map[string]int{"counter": 5}))
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"counter":5}`, w.Body.String())

	w = run(t, response.JSONWithStatus(nil, 0))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestAttachment(t *testing.T) {
	t.Parallel()

	w := run(t, response.Attachment([]byte("abc"), "qr\r\n\"code\".png", ""))
	assert.Equal(t, `attachment; filename="qr'code'.png"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "3", w.Header().Get("Content-Length"))
	assert.Equal(t, "abc", w.Body.String())

	w = run(t, response.Attachment([]byte("<svg/>"), "a.svg", "image/svg+xml;charset=utf-8"))
	assert.Equal(t, "image/svg+xml;charset=utf-8", w.Header().Get("Content-Type"))
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	tmpl := template.Must(template.New("root").Parse(`{{define "greet"}}hello {{.}}{{end}}`))

	w := run(t, response.TemplateName(tmpl, "greet", "<world>"))
	assert.Equal(t, "hello &lt;world&gt;", w.Body.String())

	w = run(t, response.TemplateNameWithStatus(tmpl, "greet", "x", http.StatusUnprocessableEntity))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	rec := httptest.NewRecorder()
	err := response.TemplateName(tmpl, "missing", nil)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Error(t, err)
	assert.Empty(t, rec.Body.String(), "failed templates write nothing")

	err = response.Template(nil, nil)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, response.ErrNilTemplate)
}

func TestWithHTMX(t *testing.T) {
	t.Parallel()

	w := run(t, response.WithHTMX(
		response.NoContent(),
		response.TriggerEvent("notify", map[string]string{"title": "Done"}),
		response.TriggerAfterSettle("settled", true),
		response.Reswap("outerHTML", "swap:100ms"),
		response.Retarget("#preview"),
		response.Refresh(),
		response.Redirect("/download"),
	))

	var trigger map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(w.Header().Get(response.HeaderHXTrigger)), &trigger))
	assert.Equal(t, "Done", trigger["notify"]["title"])
	assert.JSONEq(t, `{"settled":true}`, w.Header().Get(response.HeaderHXTriggerAfterSettle))
	assert.Equal(t, "outerHTML swap:100ms", w.Header().Get(response.HeaderHXReswap))
	assert.Equal(t, "#preview", w.Header().Get(response.HeaderHXRetarget))
	assert.Equal(t, "true", w.Header().Get(response.HeaderHXRefresh))
	assert.Equal(t, "/download", w.Header().Get(response.HeaderHXRedirect))

	assert.Nil(t, response.WithHTMX(nil, response.Refresh()))
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, response.IsHTMXRequest(r))
	r.Header.Set(response.HeaderHXRequest, "true")
	assert.True(t, response.IsHTMXRequest(r))
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	e := response.ErrUnprocessableEntity.WithMessage("empty").WithError(errors.New("cause"))
	assert.Equal(t, "empty", e.Error())
	assert.Equal(t, http.StatusUnprocessableEntity, e.StatusCode())
	assert.Equal(t, "cause", e.Details["cause"])
	assert.Nil(t, response.ErrUnprocessableEntity.Details, "base error is not mutated")
}

func errorServer(handlerFn handler.ErrorHandler[*router.Context], err error) http.Handler {
	r := router.New(router.WithErrorHandler(handlerFn))
	r.Get("/", func(*router.Context) handler.Response { return response.Error(err) })
	return r
}

func TestErrorHandlers(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		errorServer(response.ErrorHandler[*router.Context], response.ErrNotFound).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Not Found", w.Body.String())
	})

	t.Run("unknown error becomes 500", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		errorServer(response.JSONErrorHandler[*router.Context], errors.New("db down")).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body response.HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "internal_server_error", body.Code)
		assert.Equal(t, "db down", body.Details["cause"])
	})

	t.Run("router sentinel keeps its status", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		errorServer(response.ErrorHandler[*router.Context], router.ErrMethodNotAllowed).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("htmx", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(response.HeaderHXRequest, "true")
		w := httptest.NewRecorder()
		errorServer(response.HTMXErrorHandler[*router.Context]("notify"), response.ErrBadRequest.WithMessage("bad color")).
			ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Body.String())

		var trigger map[string]map[string]string
		require.NoError(t, json.Unmarshal([]byte(w.Header().Get(response.HeaderHXTrigger)), &trigger))
		assert.Equal(t, "bad color", trigger["notify"]["description"])
		assert.Equal(t, "destructive", trigger["notify"]["variant"])
	})

	t.Run("htmx handler without htmx header", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		errorServer(response.HTMXErrorHandler[*router.Context]("notify"), response.ErrBadRequest).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Bad Request", w.Body.String())
	})
}
