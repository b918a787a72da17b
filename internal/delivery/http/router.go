package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventdeck/internal/delivery/http/controllers"
	"eventdeck/internal/delivery/http/helpers"
	"eventdeck/internal/delivery/http/middleware"
	"eventdeck/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController,
	bookingController *controllers.BookingController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Public reads
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	mux.HandleFunc("GET /api/events/{slug}", eventController.GetEventBySlug)
	mux.HandleFunc("GET /api/events/{slug}/similar", eventController.ListSimilarEvents)

	// A request with an empty slug segment falls through the {slug} pattern;
	// the contract for it is 400, not the mux default 404.
	mux.HandleFunc("GET /api/events/", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteError(w, http.StatusBadRequest, "Invalid or missing slug parameter")
	})

	// Bookings
	mux.HandleFunc("POST /api/bookings", bookingController.CreateBooking)
	mux.HandleFunc("GET /api/events/{slug}/bookings", requireAuth(bookingController.ListEventBookings))

	// Admin writes
	mux.HandleFunc("POST /api/events", requireAuth(eventController.CreateEvent))
	mux.HandleFunc("PATCH /api/events/{slug}", requireAuth(eventController.UpdateEvent))

	// Auth
	mux.HandleFunc("POST /api/auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
