package http

import (
	"io"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/team-pulse/teampulse-hr/internal/storage"
)

// MountAttachments wires attachment upload/download under a feedback item:
// PUT/GET /{feedbackID}/attachments/{name}. Keys are namespaced per item so
// names only need to be unique within one piece of feedback.
func MountAttachments(r chi.Router, bs storage.BlobStore) {
	r.Put("/{feedbackID}/attachments/{name}", func(w http.ResponseWriter, req *http.Request) {
		key := attachmentKey(req)
		if _, err := bs.Put(key, req.Body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})

	r.Get("/{feedbackID}/attachments/{name}", func(w http.ResponseWriter, req *http.Request) {
		rc, err := bs.Get(attachmentKey(req))
		if err != nil {
			http.Error(w, "attachment not found", http.StatusNotFound)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = io.Copy(w, rc)
	})

	r.Delete("/{feedbackID}/attachments/{name}", func(w http.ResponseWriter, req *http.Request) {
		if err := bs.Delete(attachmentKey(req)); err != nil {
			http.Error(w, "attachment not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func attachmentKey(req *http.Request) string {
	return path.Join("feedback", chi.URLParam(req, "feedbackID"), chi.URLParam(req, "name"))
}
