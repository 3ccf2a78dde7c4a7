package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/crewroster/roster-backend-go/internal/handler/http/middleware"
	"github.com/crewroster/roster-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	rosterHandler RosterHandler,
	shiftHandler ShiftHandler,
	userHandler UserHandler,
	entitlementHandler EntitlementHandler,
	holidayHandler PublicHolidayHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "roster-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/change-password", authHandler.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/rosters/{roster}/{year}/{month}", rosterHandler.MonthGrid)

			r.Route("/shifts", func(r chi.Router) {
				r.Post("/", shiftHandler.Create)
				r.Get("/usage-summary", shiftHandler.UsageSummary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", shiftHandler.ListByYear)
					r.Get("/{shiftID}", shiftHandler.GetByID)
					r.Put("/{shiftID}", shiftHandler.Update)
					r.Delete("/{shiftID}", shiftHandler.Delete)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/me", userHandler.Me)
				r.Get("/{userID}", userHandler.GetByID)
				r.Get("/{userID}/entitlements", entitlementHandler.ListByUser)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", userHandler.Create)
					r.Put("/{userID}", userHandler.Update)
					r.Put("/{userID}/roster-sequence", userHandler.SetRosterSequence)
					r.Delete("/{userID}/roster-sequence/{year}", userHandler.DeleteRosterSequence)
				})
			})

			r.Route("/entitlements", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", entitlementHandler.Create)
				r.Get("/{entitlementID}", entitlementHandler.GetByID)
				r.Put("/{entitlementID}", entitlementHandler.Update)
				r.Delete("/{entitlementID}", entitlementHandler.Delete)
			})

			r.Route("/public-holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.ListByMonth)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{holidayID}", holidayHandler.Delete)
				})
			})
		})
	})

	return r
}
