package response

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrstudio/core/handler"
)

var filenameReplacer = strings.NewReplacer("\n", "", "\r", "", `"`, "'")

// Attachment serves data as a download named filename.
// An empty contentType is derived from the filename extension.
func Attachment(data []byte, filename string, contentType string) handler.Response {
	name := filenameReplacer.Replace(filename)
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		return write(w, contentType, http.StatusOK, data)
	}
}
