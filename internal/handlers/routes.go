package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/backend/internal/db"
	"github.com/studytrack/backend/internal/services"
)

// SetupRoutes wires handlers for every endpoint against the given store.
func SetupRoutes(app *fiber.App, store db.Store) {
	authHandler := NewAuthHandler(services.NewAuthService(store))
	blogHandler := NewBlogHandler(services.NewBlogService(store))
	contactHandler := NewContactHandler(services.NewContactService(store))
	healthHandler := NewHealthHandler(store)

	app.Get("/", healthHandler.Root)
	app.Get("/test", healthHandler.Test)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	blog := api.Group("/blog")
	blog.Get("/", blogHandler.List)
	blog.Post("/", blogHandler.Create)
	blog.Post("/cover", blogHandler.UploadCover)

	api.Post("/contact", contactHandler.Create)
}
