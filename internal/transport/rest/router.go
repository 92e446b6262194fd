package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/santhosh9133/sterline-hr/internal/admin"
	"github.com/santhosh9133/sterline-hr/internal/auth"
	"github.com/santhosh9133/sterline-hr/internal/city"
	"github.com/santhosh9133/sterline-hr/internal/country"
	"github.com/santhosh9133/sterline-hr/internal/department"
	"github.com/santhosh9133/sterline-hr/internal/designation"
	"github.com/santhosh9133/sterline-hr/internal/employee"
	"github.com/santhosh9133/sterline-hr/internal/order"
	"github.com/santhosh9133/sterline-hr/internal/state"
	"github.com/santhosh9133/sterline-hr/internal/transport/middleware"
	"github.com/santhosh9133/sterline-hr/internal/transport/swagger"
)

// Handlers bundles every mounted module handler.
type Handlers struct {
	Auth        *auth.Handler
	Employee    *employee.Handler
	Admin       *admin.Handler
	Country     *country.Handler
	State       *state.Handler
	City        *city.Handler
	Department  *department.Handler
	Designation *designation.Handler
	Order       *order.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)
	})

	router.Route("/api", func(r chi.Router) {
		// User account endpoints; /register and /login are public, the
		// rest sit behind the bearer middleware inside RegisterRoutes.
		r.Route("/auth", handlers.Auth.RegisterRoutes)

		r.Route("/employees", func(er chi.Router) {
			er.Post("/login", handlers.Employee.Login)

			er.Group(func(per chi.Router) {
				per.Use(handlers.Auth.Middleware)
				handlers.Employee.RegisterRoutes(per)
			})
		})

		r.Route("/admin", func(ar chi.Router) {
			ar.Post("/login", handlers.Admin.Login)
			ar.Post("/register", handlers.Admin.Register)
			ar.Post("/setup-super-admin", handlers.Admin.SetupSuperAdmin)

			ar.Group(func(par chi.Router) {
				par.Use(handlers.Auth.Middleware)
				handlers.Admin.RegisterRoutes(par)
			})
		})

		// Catalog and order routes require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(handlers.Auth.Middleware)

			pr.Route("/countries", handlers.Country.RegisterRoutes)
			pr.Route("/states", handlers.State.RegisterRoutes)
			pr.Route("/cities", handlers.City.RegisterRoutes)
			pr.Route("/departments", handlers.Department.RegisterRoutes)
			pr.Route("/designations", handlers.Designation.RegisterRoutes)
			pr.Route("/orders", handlers.Order.RegisterRoutes)
		})
	})
}
