package api

import (
	"net/http"
	"time"

	"golden9_club/internal/api/handler"
	"golden9_club/internal/api/middleware"
	"golden9_club/internal/app/service"
	"golden9_club/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	tokens *security.TokenManager,
	authService *service.AuthService,
	userService *service.UserService,
	eventService *service.EventService,
	productService *service.ProductService,
	leaderboardService *service.LeaderboardService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies the bearer token from "Authorization: Bearer <token>" and puts
	// claims in context. Enforcement happens in middleware.Authenticator.
	r.Use(jwtauth.Verifier(tokens.Auth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(api chi.Router) {
		// Auth routes (public)
		authHandler := handler.NewAuthHandler(authService)
		api.Group(func(publicAuth chi.Router) {
			authHandler.RegisterRoutes(publicAuth)
		})

		// Leaderboard (public)
		leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
		api.Route("/leaderboard", leaderboardHandler.RegisterRoutes)

		// Everything else requires a valid token
		api.Group(func(protected chi.Router) {
			protected.Use(middleware.Authenticator)

			userHandler := handler.NewUserHandler(userService)
			protected.Route("/users", userHandler.RegisterRoutes)

			eventHandler := handler.NewEventHandler(eventService)
			protected.Route("/events", eventHandler.RegisterRoutes)

			productHandler := handler.NewProductHandler(productService)
			protected.Route("/products", productHandler.RegisterRoutes)
		})
	})

	return r
}
