package main

import (
	"log"
	"net/http"

	_ "github.com/Nishat-Ahmad/CRITiQUE/docs" // swagger docs

	"github.com/Nishat-Ahmad/CRITiQUE/internal/cache"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/config"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/db"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/handler"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/repository"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title CRITiQUE Campus Food Review API
// @version 1.0
// @description API de reviews de comida de campus con recomendador híbrido (Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	placeRepo := repository.NewPlaceRepository()
	reviewRepo := repository.NewReviewRepository()
	recRepo := repository.NewRecommendationRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.AdminCode)
	placeSvc := service.NewPlaceService(placeRepo, reviewRepo, userRepo)
	reviewSvc := service.NewReviewService(reviewRepo, placeRepo, userRepo)
	recSvc := service.NewRecommendService(placeRepo, reviewRepo, userRepo, recRepo)
	dashSvc := service.NewDashboardService(reviewRepo, placeRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	placeH := handler.NewPlaceHandler(placeSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	recH := handler.NewRecommendHandler(recSvc)
	dashH := handler.NewDashboardHandler(dashSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Lugares (públicas)
	r.Get("/places/search", placeH.Search)
	r.Get("/places/top", placeH.Top)
	r.Get("/places/trending", placeH.Trending)
	r.Get("/places/types", placeH.Types)
	r.Get("/places/{id}", placeH.GetPlace)
	r.Get("/places/{id}/reviews", reviewH.GetPlaceReviews)

	// Recomendaciones por lugar (públicas: las ve cualquiera que mira un lugar)
	r.Get("/places/{id}/similar", recH.GetSimilarPlaces)
	r.Get("/places/{id}/also-liked", recH.GetAlsoLiked)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// crear lugares y reviews requiere login
		r.Post("/places", placeH.CreatePlace)
		r.Post("/places/{id}/reviews", reviewH.PostReview)
		r.Put("/reviews/{id}", reviewH.EditReview)
		r.Delete("/reviews/{id}", reviewH.DeleteReview)

		// ---- Endpoints /me ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/", authH.Me)
			r.Put("/", authH.UpdateMe)
			r.Get("/reviews", reviewH.GetMyReviews)
			r.Get("/recommendations", recH.GetMyRecommendations)
			r.Get("/recommendations/history", recH.GetMyHistory)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			r.Get("/users", authH.ListUsers)

			r.Route("/users/{id}", func(r chi.Router) {
				r.Get("/", authH.GetUserByID)

				// HTTP normal
				r.Get("/recommendations", recH.GetRecommendations)

				// WebSocket
				r.Get("/ws/recommendations", recH.GetRecommendationsWS)
			})

			// gestión de lugares
			r.Put("/admin/places/{id}", placeH.UpdatePlace)
			r.Delete("/admin/places/{id}", placeH.DeletePlace)

			// métricas
			r.Get("/admin/dashboard", dashH.GetMetrics)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
