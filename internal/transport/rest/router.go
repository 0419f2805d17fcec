package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/veiligwerk/toolbox-tracker/internal/auth"
	"github.com/veiligwerk/toolbox-tracker/internal/completion"
	"github.com/veiligwerk/toolbox-tracker/internal/employee"
	"github.com/veiligwerk/toolbox-tracker/internal/invitation"
	"github.com/veiligwerk/toolbox-tracker/internal/toolbox"
	"github.com/veiligwerk/toolbox-tracker/internal/transport/middleware"
	"github.com/veiligwerk/toolbox-tracker/internal/transport/swagger"
	"github.com/veiligwerk/toolbox-tracker/internal/user"
)

// Handlers bundles the per-domain HTTP handlers wired by the server command.
type Handlers struct {
	Auth       *auth.Handler
	User       *user.Handler
	Employee   *employee.Handler
	Toolbox    *toolbox.Handler
	Completion *completion.Handler
	Invitation *invitation.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery)
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if h.Auth != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/register", h.Auth.Register)
				sr.Post("/login", h.Auth.Login)

				sr.Group(func(ar chi.Router) {
					ar.Use(h.Auth.AuthMiddleware)
					ar.Get("/me", h.Auth.Me)
					ar.Post("/logout", h.Auth.Logout)
				})
			})
		}

		if h.Auth == nil {
			return
		}

		// Everything below requires a valid bearer token; writes on the
		// admin-gated resources additionally require the admin role.
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			if h.User != nil {
				pr.Route("/users", func(ur chi.Router) {
					ur.Get("/", h.User.List)
					ur.Get("/{id}", h.User.Get)

					ur.Group(func(ar chi.Router) {
						ar.Use(h.Auth.RequireAdmin)
						ar.Post("/", h.User.Create)
						ar.Put("/{id}", h.User.Update)
						ar.Delete("/{id}", h.User.Delete)
					})
				})
			}

			if h.Employee != nil {
				pr.Route("/employees", func(er chi.Router) {
					er.Get("/", h.Employee.List)
					er.Get("/{id}", h.Employee.Get)

					er.Group(func(ar chi.Router) {
						ar.Use(h.Auth.RequireAdmin)
						ar.Post("/", h.Employee.Create)
						ar.Put("/{id}", h.Employee.Update)
						ar.Delete("/{id}", h.Employee.Delete)
					})
				})
			}

			if h.Toolbox != nil {
				pr.Route("/toolboxes", func(tr chi.Router) {
					tr.Get("/", h.Toolbox.List)
					tr.Get("/{id}", h.Toolbox.Get)

					tr.Group(func(ar chi.Router) {
						ar.Use(h.Auth.RequireAdmin)
						ar.Post("/", h.Toolbox.Create)
						ar.Put("/{id}", h.Toolbox.Update)
						ar.Delete("/{id}", h.Toolbox.Delete)
					})
				})
			}

			if h.Completion != nil {
				pr.Route("/completions", func(cr chi.Router) {
					cr.Get("/", h.Completion.List)
					cr.Post("/", h.Completion.Create)
					cr.Get("/employee/{employeeID}", h.Completion.ListForEmployee)
				})
			}

			if h.Invitation != nil {
				pr.Group(func(ar chi.Router) {
					ar.Use(h.Auth.RequireAdmin)
					ar.Get("/invitations", h.Invitation.List)
					ar.Post("/invitations", h.Invitation.Create)
				})
			}
		})
	})
}
