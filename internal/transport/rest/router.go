package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danisworo/workdesk/internal/attendance"
	"github.com/danisworo/workdesk/internal/auth"
	"github.com/danisworo/workdesk/internal/chat"
	"github.com/danisworo/workdesk/internal/employee"
	"github.com/danisworo/workdesk/internal/project"
	"github.com/danisworo/workdesk/internal/task"
	"github.com/danisworo/workdesk/internal/transport/middleware"
	"github.com/danisworo/workdesk/internal/transport/swagger"
	"github.com/danisworo/workdesk/internal/user"
	"github.com/go-chi/chi"
)

type Handlers struct {
	Auth       *auth.Handler
	User       *user.Handler
	Employee   *employee.Handler
	Task       *task.Handler
	Project    *project.Handler
	Attendance *attendance.Handler
	Chat       *chat.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORSMiddleware(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/register", h.Auth.Register)
			sr.Post("/logout", h.Auth.Logout)
		})

		// Everything below requires a valid session.
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Post("/user/password", h.Auth.ChangePassword)
			pr.Get("/user/profile", h.User.GetProfile)

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", h.Employee.ListEmployees)

				// Directory management is admin-only.
				er.Group(func(ar chi.Router) {
					ar.Use(h.Auth.RequireAdmin)
					ar.Post("/", h.Employee.CreateEmployee)
					ar.Patch("/{id}", h.Employee.SetActive)
					ar.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			pr.Route("/tasks", func(tr chi.Router) {
				tr.Get("/", h.Task.ListTasks)
				tr.Post("/", h.Task.CreateTask)
				tr.Get("/{id}", h.Task.GetTask)
				tr.Patch("/{id}", h.Task.UpdateTask)
				tr.Delete("/{id}", h.Task.DeleteTask)
			})

			pr.Route("/projects", func(pjr chi.Router) {
				pjr.Get("/", h.Project.ListProjects)
				pjr.Post("/", h.Project.CreateProject)
				pjr.Get("/{id}", h.Project.GetProject)
				pjr.Patch("/{id}", h.Project.UpdateProject)
				pjr.Delete("/{id}", h.Project.DeleteProject)
			})

			pr.Route("/attendance", func(ar chi.Router) {
				ar.Get("/", h.Attendance.History)
				ar.Post("/check-in", h.Attendance.CheckIn)
				ar.Post("/check-out", h.Attendance.CheckOut)
			})

			pr.Route("/chats", func(cr chi.Router) {
				cr.Get("/", h.Chat.ListChats)
				cr.Post("/", h.Chat.CreateChat)
				cr.Get("/{id}", h.Chat.GetChat)
				cr.Patch("/{id}", h.Chat.RenameChat)
				cr.Delete("/{id}", h.Chat.DeleteChat)
				cr.Get("/{id}/messages", h.Chat.ListMessages)
				cr.Post("/{id}/messages", h.Chat.PostMessage)
			})
		})
	})
}
