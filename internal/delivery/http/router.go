package http

import (
	"log/slog"
	"net/http"

	"fitstudio/internal/delivery/http/controllers"
	"fitstudio/internal/delivery/http/middleware"
	"fitstudio/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterDeps holds the controllers and auth collaborators mounted by NewRouter.
type RouterDeps struct {
	Booking   *controllers.BookingController
	Analytics *controllers.AnalyticsController
	Health    *controllers.HealthController
	Verifier  domain.TokenVerifier
	Logger    *slog.Logger
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(d RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(d.Verifier, d.Logger)
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireRole(domain.RoleAdmin)(h))
	}

	mux.HandleFunc("GET /health", d.Health.Health)

	// Booking
	mux.HandleFunc("GET /trainers/{trainerID}/schedule", auth(d.Booking.GetSchedule))
	mux.HandleFunc("GET /trainers/{trainerID}/selection", auth(d.Booking.GetSelection))
	mux.HandleFunc("POST /trainers/{trainerID}/selection", auth(d.Booking.AddSelection))
	mux.HandleFunc("DELETE /trainers/{trainerID}/selection", auth(d.Booking.RemoveSelection))
	mux.HandleFunc("DELETE /trainers/{trainerID}/selection/all", auth(d.Booking.ClearSelection))
	mux.HandleFunc("POST /trainers/{trainerID}/booking-requests", auth(d.Booking.SubmitBookingRequest))

	// Admin
	mux.HandleFunc("GET /admin/trainers/{trainerID}/booking-requests", admin(d.Booking.ListBookingRequests))
	mux.HandleFunc("GET /admin/analytics/months", admin(d.Analytics.Months))
	mux.HandleFunc("GET /admin/analytics/summary", admin(d.Analytics.Summary))
	mux.HandleFunc("GET /admin/analytics/daily", admin(d.Analytics.Daily))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with request ID, access logging and CORS.
func NewHandler(mux http.Handler, allowedOrigins []string, logger *slog.Logger) http.Handler {
	return middleware.RequestID(middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, mux)))
}
