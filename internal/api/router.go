package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/arvelin/staffdesk-be/internal/api/handlers"
	"github.com/arvelin/staffdesk-be/internal/auth"
	"github.com/arvelin/staffdesk-be/internal/monitoring"
	"github.com/arvelin/staffdesk-be/internal/services"
	"github.com/arvelin/staffdesk-be/internal/websocket"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	tokens *auth.TokenManager,
	hub *websocket.Hub,
	userService services.UserServiceProvider,
	employeeService services.EmployeeServiceProvider,
	eventService services.EventServiceProvider,
	systemUpdater *monitoring.SystemUpdater,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for browser clients
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, eventService, tokens)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, eventService, hub)
	eventHandler := handlers.NewEventHandler(eventService)
	systemHandler := handlers.NewSystemHandler(systemUpdater)
	wsHandler := handlers.NewWebSocketHandler(hub)

	// Public routes
	r.Get("/health", handlers.Health)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/signin", authHandler.Signin)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(tokens.Middleware())

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/{id}", employeeHandler.Get)
		})

		r.Get("/events", eventHandler.GetRecent)
		r.Get("/system", systemHandler.Get)
		r.Get("/ws", wsHandler.Serve)
	})

	return r
}
