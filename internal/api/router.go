package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Madiha-Maha/AuroraMind-AI/internal/api/handlers"
	"github.com/Madiha-Maha/AuroraMind-AI/internal/auth"
	"github.com/Madiha-Maha/AuroraMind-AI/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	tokens *auth.TokenService,
	userService services.UserServiceProvider,
	insightService services.InsightServiceProvider,
	predictionService services.PredictionServiceProvider,
	staticDir string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The dashboard front-end may be served from anywhere, so CORS stays open.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	insightHandler := handlers.NewInsightHandler(insightService)
	predictionHandler := handlers.NewPredictionHandler(predictionService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Everything below requires a bearer token.
		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware())

			r.Get("/dashboard", predictionHandler.Dashboard)
			r.Get("/insights", insightHandler.List)
			r.Post("/insights", insightHandler.Create)
			r.Get("/predictions", predictionHandler.List)
			r.Post("/predict", predictionHandler.Predict)
		})
	})

	// Static front-end shell
	if staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}

	return r
}
