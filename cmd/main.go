package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/studytrack/backend/internal/db"
	"github.com/studytrack/backend/internal/handlers"
	"github.com/studytrack/backend/internal/storage"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	// Initialize Fiber
	app := fiber.New()
	// Initialize MinIO for blog cover uploads
	storage.InitMinio()
	// Middleware
	app.Use(logger.New())
	// Any origin with credentials; Fiber rejects "*" combined with
	// credentials, hence the origin func.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
	}))

	// Get MongoDB target from environment
	mongoURI := os.Getenv("DATABASE_URL")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017" // Default fallback
	}
	dbName := os.Getenv("DATABASE_NAME")
	if dbName == "" {
		dbName = "studytrack" // Default fallback
	}

	// Connect to MongoDB
	store := db.ConnectMongoDB(mongoURI, dbName)

	handlers.SetupRoutes(app, store)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000" // Default port
	}

	// Start server
	log.Fatal(app.Listen(":" + port))
}
