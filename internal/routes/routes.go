package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/reverie-app/journal-backend/internal/config"
	"github.com/reverie-app/journal-backend/internal/handlers"
	"github.com/reverie-app/journal-backend/internal/middleware"
)

// SetupRoutes registers the REST surface. Auth is enforced per route group;
// the recipe catalog stays public, everything user-owned requires a token.
func SetupRoutes(r chi.Router, cfg *config.Config) {
	auth := middleware.RequireAuth(cfg.JWTSecret)
	aiLimit := middleware.AIRateLimit()

	// Auth routes
	r.Post("/api/register", handlers.Register)
	r.Post("/api/login", handlers.Login)
	r.Post("/api/reset-password", handlers.ResetPassword)

	// Diary routes
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Post("/api/diary", handlers.CreateDiaryEntry)
		r.Get("/api/diary", handlers.GetDiaryEntries)
		r.Get("/api/diary/stats", handlers.GetDiaryStats)
		r.Get("/api/diary/on-this-day", handlers.GetOnThisDay)
		r.Get("/api/diary/mood-analysis", handlers.GetMoodAnalysis)
	})

	// Goal routes
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/api/goals", handlers.GetGoals)
		r.Post("/api/goals", handlers.CreateGoal)
		r.Patch("/api/goals/{id}", handlers.UpdateGoal)
		r.Delete("/api/goals/{id}", handlers.DeleteGoal)
	})

	// Recipe routes (catalog is public; writes require auth)
	r.Get("/api/recipes", handlers.GetRecipes)
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Post("/api/recipes", handlers.CreateRecipe)
		r.Post("/api/recipes/image", handlers.UploadRecipeImage)
	})

	// Morning thoughts routes
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/api/morning-thoughts", handlers.GetMorningThoughts)
		r.Post("/api/morning-thoughts", handlers.SaveMorningThoughts)
	})

	// AI relay routes (stricter rate limit: each request costs a completion)
	r.Group(func(r chi.Router) {
		r.Use(auth, aiLimit)
		r.Post("/api/analyze", handlers.AnalyzeEntry)
		r.Post("/api/chat", handlers.Chat)
		r.Post("/api/dream", handlers.InterpretDream)
		r.Post("/api/therapy-chat", handlers.TherapyChat)
	})

	// Chat history + WebSocket gateway
	r.With(auth).Get("/api/chat/history", handlers.GetChatHistory)
	r.Get("/ws/chat", handlers.ChatWebSocket)

	// Activity + insights
	r.Post("/api/activity", handlers.RecordActivity)
	r.With(auth).Get("/api/insights", handlers.GetInsights)

	// Authenticated health check
	r.With(auth).Get("/api/health", handlers.Health)
}
