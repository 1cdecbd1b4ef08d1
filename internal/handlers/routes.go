package handlers

import (
	"net/http"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/auth"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers bundles everything the router serves.
type Handlers struct {
	Auth          *auth.AuthHandler
	APIKeys       *APIKeyHandler
	Bookings      *BookingHandler
	Quotes        *QuoteHandler
	Cars          *CarHandler
	Notifications *NotificationHandler
	Uploads       *UploadHandler
	UploadLimiter *RateLimiter
}

type RouterOptions struct {
	EnableCORS  bool
	CORSOrigins []string
}

func secured(o *huma.Operation) {
	o.Security = []map[string][]string{{"cookieAuth": {}}, {"apiKeyAuth": {}}}
}

func NewRouter(h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if opts.EnableCORS {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders:   []string{"Content-Type", "X-API-KEY"},
			AllowCredentials: true,
		}).Handler)
	}

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Get("/auth/google/login", h.Auth.HandleLogin)
	r.Get("/auth/google/callback", h.Auth.HandleCallback)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.AuthMiddleware)

		config := huma.DefaultConfig("Car Rental Admin API", "1.0.0")
		config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
			"cookieAuth": {
				Type: "apiKey",
				In:   "cookie",
				Name: auth.CookieName,
			},
			"apiKeyAuth": {
				Type: "apiKey",
				In:   "header",
				Name: "X-API-KEY",
			},
		}
		api := humachi.New(r, config)
		registerOperations(api, h)

		limiter := h.UploadLimiter
		if limiter == nil {
			limiter = NewRateLimiter(0)
		}
		r.With(limiter.Limit).Post("/api/uploads/cars", h.Uploads.HandleCarImages)
	})

	return r
}

func registerOperations(api huma.API, h Handlers) {
	huma.Get(api, "/me", h.Auth.HandleMe, secured)

	huma.Get(api, "/api-keys", h.APIKeys.HandleList, secured)
	huma.Post(api, "/api-keys", h.APIKeys.HandleCreate, secured)
	huma.Delete(api, "/api-keys/{id}", h.APIKeys.HandleDelete, secured)

	huma.Get(api, "/bookings", h.Bookings.HandleList, secured)
	huma.Get(api, "/bookings/{id}", h.Bookings.HandleGet, secured)
	huma.Put(api, "/bookings/{id}/registered", h.Bookings.HandleSetRegistered, secured)
	huma.Put(api, "/bookings/{id}/status", h.Bookings.HandleUpdateStatus, secured)
	huma.Put(api, "/bookings/{id}/pricing", h.Bookings.HandleUpdatePricing, secured)
	huma.Post(api, "/bookings/{id}/finalization-email", h.Bookings.HandleSendFinalization, secured)
	huma.Get(api, "/bookings/{id}/finalization-email/preview", h.Bookings.HandlePreviewFinalization, secured)

	huma.Get(api, "/quotes", h.Quotes.HandleList, secured)
	huma.Get(api, "/quotes/{id}", h.Quotes.HandleGet, secured)
	huma.Put(api, "/quotes/{id}/status", h.Quotes.HandleUpdateStatus, secured)
	huma.Post(api, "/quotes/{id}/booking-request-email", h.Quotes.HandleSendBookingRequest, secured)
	huma.Post(api, "/quotes/{id}/booking-request-email/preview", h.Quotes.HandlePreviewBookingRequest, secured)

	huma.Get(api, "/cars", h.Cars.HandleList, secured)
	huma.Post(api, "/cars", h.Cars.HandleCreate, secured)
	huma.Get(api, "/cars/{id}", h.Cars.HandleGet, secured)
	huma.Put(api, "/cars/{id}", h.Cars.HandleUpdate, secured)
	huma.Delete(api, "/cars/{id}", h.Cars.HandleDelete, secured)
	huma.Get(api, "/colors", h.Cars.HandleColors, secured)

	huma.Get(api, "/notifications", h.Notifications.HandleList, secured)
	huma.Get(api, "/notifications/unread-count", h.Notifications.HandleUnreadCount, secured)
	huma.Post(api, "/notifications/read-all", h.Notifications.HandleMarkAllRead, secured)
	huma.Post(api, "/notifications/{id}/read", h.Notifications.HandleMarkRead, secured)
	huma.Post(api, "/notifications/promote", h.Notifications.HandlePromote, secured)
}
