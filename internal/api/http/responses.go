package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/team-pulse/teampulse-hr/internal/assessment"
	"github.com/team-pulse/teampulse-hr/internal/rbac"
)

func CreateResponseHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AssessmentID string `json:"assessment_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.AssessmentID == "" {
			http.Error(w, "assessment_id required", http.StatusBadRequest)
			return
		}
		user := rbac.SubjectFromContext(r.Context())
		resp, err := store.NewResponse(req.AssessmentID, user)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func SaveAnswersHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "responseID")
		var answers map[string]string
		if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if !ownsResponse(store, r, id) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		resp, err := store.SaveAnswers(id, answers)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func SubmitResponseHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "responseID")
		if !ownsResponse(store, r, id) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		resp, err := store.Submit(id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func GetResponseHandler(store assessment.Store) http.HandlerFunc {
	checker := rbac.NewChecker(nil)
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "responseID")
		resp, err := store.GetResponse(id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if resp.UserID != rbac.SubjectFromContext(r.Context()) &&
			!checker.Has(rbac.RoleFromContext(r.Context()), "response:view-all") {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func ListResponsesHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.ListResponses(r.URL.Query().Get("assessment_id"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(list)
	}
}

// ownsResponse checks the response belongs to the caller. Saving and
// submitting are owner-only, whatever the role.
func ownsResponse(store assessment.Store, r *http.Request, id string) bool {
	resp, err := store.GetResponse(id)
	if err != nil {
		return false
	}
	return resp.UserID == rbac.SubjectFromContext(r.Context())
}
