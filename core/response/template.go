package response

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/dmitrymomot/qrstudio/core/handler"
)

// ErrNilTemplate is returned when rendering a nil template.
var ErrNilTemplate = errors.New("response: template is nil")

// Template renders tmpl with 200 OK status.
func Template(tmpl *template.Template, data any) handler.Response {
	return TemplateNameWithStatus(tmpl, "", data, http.StatusOK)
}

// TemplateName renders the named template of tmpl with 200 OK status.
func TemplateName(tmpl *template.Template, name string, data any) handler.Response {
	return TemplateNameWithStatus(tmpl, name, data, http.StatusOK)
}

// TemplateNameWithStatus renders the named template into a buffer first, so a
// template error never produces a partial page.
func TemplateNameWithStatus(tmpl *template.Template, name string, data any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if tmpl == nil {
			return ErrNilTemplate
		}

		var buf bytes.Buffer
		var err error
		if name != "" {
			err = tmpl.ExecuteTemplate(&buf, name, data)
		} else {
			err = tmpl.Execute(&buf, data)
		}
		if err != nil {
			return err
		}
		return write(w, "text/html; charset=utf-8", status, buf.Bytes())
	}
}
