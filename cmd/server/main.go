// cmd/server/main.go
package main

import (
	"log"

	"github.com/M00N69/supainspection/internal/config"
	"github.com/M00N69/supainspection/internal/database"
	"github.com/M00N69/supainspection/internal/handlers"
	"github.com/M00N69/supainspection/internal/logging"
	"github.com/M00N69/supainspection/internal/middleware"
	"github.com/M00N69/supainspection/internal/storage"
	"github.com/M00N69/supainspection/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logg := logging.New(cfg.LogLevel)

	// Initialize database
	db, err := database.InitDB(cfg.DatabaseURL)
	if err != nil {
		logg.Fatal("Failed to connect to database: ", err)
	}

	// Auto-migrate models
	if err := database.MigrateDB(db); err != nil {
		logg.Fatal("Failed to migrate database: ", err)
	}

	photoStore, err := storage.NewPhotoStore(cfg)
	if err != nil {
		logg.Fatal("Failed to initialize MinIO client: ", err)
	}

	users := store.NewUserStore(db)
	checkpoints := store.NewCheckpointStore(db)
	inspections := store.NewInspectionStore(db)

	// Initialize Gin router
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/login", handlers.Login(users, cfg.JWTSecret, logg))
		public.POST("/logout", handlers.Logout)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/checklists", handlers.ListChecklists(checkpoints, logg))
		protected.POST("/inspections", handlers.StartInspection(checkpoints, inspections, logg))
		protected.GET("/inspections", handlers.GetHistory(inspections, logg))
		protected.GET("/inspections/:id", handlers.GetInspection(inspections, photoStore, logg))
		protected.PUT("/inspections/:id/results", handlers.SaveResults(inspections, photoStore, logg))
	}

	logg.Infof("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logg.Fatal("Failed to start server: ", err)
	}
}
