package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/reverie-app/journal-backend/internal/config"
	"github.com/reverie-app/journal-backend/internal/database"
	"github.com/reverie-app/journal-backend/internal/handlers"
	"github.com/reverie-app/journal-backend/internal/middleware"
	"github.com/reverie-app/journal-backend/internal/routes"
	"github.com/reverie-app/journal-backend/internal/services"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if cfg.OpenAIKey == "" {
		log.Println("⚠️  WARNING: OPENAI_API_KEY not set. Mood classification and AI chat will fail.")
	}

	// Connect to MongoDB (primary store)
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer database.Disconnect()

	// Connect to Redis (rate limiting, recipe cache)
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}
	defer database.DisconnectRedis()

	// Connect to PostgreSQL (activity events)
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL: ", err)
	}
	defer database.DisconnectPostgres()

	// Ensure MongoDB indexes (unique email, unique morning-thought day, ...)
	if err := services.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("Failed to ensure MongoDB indexes: ", err)
	}
	log.Println("✅ MongoDB indexes ensured")

	// Reseed the recipe catalog before accepting traffic
	if err := services.SeedRecipes(context.Background()); err != nil {
		log.Fatal("Failed to seed recipes: ", err)
	}

	// Completion API client
	services.InitOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIKey, cfg.OpenAIModel)

	// Handlers
	handlers.Init(cfg)
	if cfg.HasCloudinary() {
		if err := handlers.InitCloudinary(cfg); err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("Recipe image uploads will not be available")
		} else {
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. Recipe image uploads will not be available")
	}

	// Router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Liveness check outside the rate limiter: the frontend pings it every
	// few minutes to keep the free-tier host awake.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.GlobalRateLimit())
		routes.SetupRoutes(r, cfg)
	})

	log.Printf("🚀 Journal backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
