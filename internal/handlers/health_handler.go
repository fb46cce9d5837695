package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/backend/internal/db"
)

type HealthHandler struct {
	store db.Store
}

func NewHealthHandler(store db.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Study Time Tracker Backend Running"})
}

func truncateErr(err error) string {
	msg := err.Error()
	if len(msg) > 60 {
		msg = msg[:60]
	}
	return msg
}

// Test reports process liveness and store connectivity. Every failure is
// degraded to a status string; this endpoint never errors to the caller.
func (h *HealthHandler) Test(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":       "✅ Running",
		"database":      "❌ Not Available",
		"database_url":  "❌ Not Set",
		"database_name": "❌ Not Set",
		"collections":   []string{},
	}

	if h.store == nil {
		return c.JSON(response)
	}

	if err := h.store.Ping(c.Context()); err != nil {
		response["database"] = "❌ Error: " + truncateErr(err)
		return c.JSON(response)
	}

	response["database"] = "✅ Connected"
	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "✅ Set"
	}
	response["database_name"] = h.store.Name()

	collections, err := h.store.ListCollectionNames(c.Context())
	if err != nil {
		response["collections"] = []string{"Error: " + truncateErr(err)}
	} else {
		if len(collections) > 10 {
			collections = collections[:10]
		}
		response["collections"] = collections
	}

	return c.JSON(response)
}
