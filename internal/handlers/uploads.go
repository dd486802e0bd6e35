package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// FileResolver maps a stored filename to its on-disk path.
type FileResolver interface {
	Path(filename string) (string, error)
}

// NewUploadHandler serves GET /upload/{filename}, returning the stored
// file verbatim.
func NewUploadHandler(files FileResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path, err := files.Path(chi.URLParam(r, "filename"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, path)
	}
}
