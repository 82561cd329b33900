package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/team-pulse/teampulse-hr/internal/api/http"
	auth "github.com/team-pulse/teampulse-hr/internal/auth/middleware"
	"github.com/team-pulse/teampulse-hr/internal/assessment"
	"github.com/team-pulse/teampulse-hr/internal/config"
	"github.com/team-pulse/teampulse-hr/internal/db"
	"github.com/team-pulse/teampulse-hr/internal/department"
	"github.com/team-pulse/teampulse-hr/internal/feedback"
	"github.com/team-pulse/teampulse-hr/internal/rbac"
	"github.com/team-pulse/teampulse-hr/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	assessments := assessment.NewSQLStore(dbh, cfg.DBDriver)
	departments := department.NewSQLStore(dbh, cfg.DBDriver)
	feedbackStore := feedback.NewSQLStore(dbh, cfg.DBDriver)

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, departments, auth.AdminAccount{
		Username: cfg.AdminUser,
		PassHash: cfg.AdminPassHash,
	}))

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	// Protected API (JWT -> subject+role in context -> RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		// Assessments
		pr.With(rbac.Require("assessment:create")).
			Post("/assessments", api.CreateAssessmentHandler(assessments))
		pr.With(rbac.Require("assessment:view")).
			Get("/assessments", api.ListAssessmentsHandler(assessments))
		pr.With(rbac.Require("assessment:view")).
			Get("/assessments/{assessmentID}", api.GetAssessmentHandler(assessments))
		pr.With(rbac.Require("assessment:view")).
			Post("/assessments/{assessmentID}/validate", api.ValidateAnswersHandler(assessments))

		// Responses
		pr.With(rbac.Require("response:create")).
			Post("/responses", api.CreateResponseHandler(assessments))
		pr.With(rbac.Require("response:save")).
			Post("/responses/{responseID}/answers", api.SaveAnswersHandler(assessments))
		pr.With(rbac.Require("response:submit")).
			Post("/responses/{responseID}/submit", api.SubmitResponseHandler(assessments))
		pr.With(rbac.RequireAny("response:view-own", "response:view-all")).
			Get("/responses/{responseID}", api.GetResponseHandler(assessments))
		pr.With(rbac.Require("response:view-all")).
			Get("/responses", api.ListResponsesHandler(assessments))

		// Departments and directory
		pr.With(rbac.Require("department:manage")).
			Post("/departments", api.CreateDepartmentHandler(departments))
		pr.Get("/departments", api.ListDepartmentsHandler(departments))
		pr.Get("/departments/{departmentID}", api.GetDepartmentHandler(departments))
		pr.With(rbac.Require("users:manage")).
			Post("/users", api.UpsertUserHandler(departments))
		pr.With(rbac.Require("users:manage")).
			Get("/users", api.ListUsersHandler(departments))

		// Feedback
		pr.Route("/feedback", func(fr chi.Router) {
			fr.With(rbac.Require("feedback:create")).
				Post("/", api.CreateFeedbackHandler(feedbackStore))
			fr.With(rbac.RequireAny("feedback:view", "feedback:create")).
				Get("/", api.ListFeedbackHandler(feedbackStore))
			fr.With(rbac.RequireAny("feedback:view", "feedback:create")).
				Get("/{feedbackID}", api.GetFeedbackHandler(feedbackStore))
			fr.With(rbac.Require("feedback:assign")).
				Post("/{feedbackID}/assign", api.AssignFeedbackHandler(feedbackStore))
			fr.With(rbac.Require("feedback:resolve")).
				Post("/{feedbackID}/resolve", api.ResolveFeedbackHandler(feedbackStore))
			fr.With(rbac.Require("feedback:archive")).
				Post("/{feedbackID}/archive", api.ArchiveFeedbackHandler(feedbackStore))
			fr.Group(func(ar chi.Router) {
				ar.Use(rbac.Require("feedback:create"))
				api.MountAttachments(ar, bs)
			})
		})
	})

	log.Printf("teampulse-hr gateway listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
