package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/team-pulse/teampulse-hr/internal/feedback"
	"github.com/team-pulse/teampulse-hr/internal/rbac"
)

func CreateFeedbackHandler(store *feedback.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var it feedback.Item
		if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		it.AuthorID = rbac.SubjectFromContext(r.Context())
		created, err := store.Create(it)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(created)
	}
}

func GetFeedbackHandler(store *feedback.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := store.Get(chi.URLParam(r, "feedbackID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(it)
	}
}

func ListFeedbackHandler(store *feedback.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List(r.URL.Query().Get("department"), r.URL.Query().Get("status"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(list)
	}
}

func AssignFeedbackHandler(store *feedback.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AssigneeID string `json:"assignee_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		it, err := store.Assign(chi.URLParam(r, "feedbackID"), req.AssigneeID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(it)
	}
}

func ResolveFeedbackHandler(store *feedback.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := store.Resolve(chi.URLParam(r, "feedbackID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(it)
	}
}

func ArchiveFeedbackHandler(store *feedback.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := store.Archive(chi.URLParam(r, "feedbackID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(it)
	}
}
