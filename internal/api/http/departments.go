package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/team-pulse/teampulse-hr/internal/department"
)

func CreateDepartmentHandler(store *department.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var d department.Department
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		created, err := store.CreateDepartment(d)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(created)
	}
}

func GetDepartmentHandler(store *department.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := store.GetDepartment(chi.URLParam(r, "departmentID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(d)
	}
}

func ListDepartmentsHandler(store *department.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.ListDepartments()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(list)
	}
}

// UpsertUserHandler creates or updates a directory user. A plaintext
// password in the request is hashed here; an empty one keeps the stored hash.
func UpsertUserHandler(store *department.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			department.User
			Password string `json:"password,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				http.Error(w, "hash password", http.StatusInternalServerError)
				return
			}
			req.User.PasswordHash = string(hash)
		}
		u, err := store.UpsertUser(req.User)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(u)
	}
}

func ListUsersHandler(store *department.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.ListUsers(r.URL.Query().Get("department"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(list)
	}
}
