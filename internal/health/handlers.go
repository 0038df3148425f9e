package health

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startedAt = time.Now()

// Handlers exposes the liveness endpoint.
type Handlers struct {
	DB *gorm.DB
}

// JSON GET /health
func (h *Handlers) JSON(c *fiber.Ctx) error {
	dbStatus := "disconnected"
	if h.DB != nil {
		if sqlDB, err := h.DB.DB(); err == nil && sqlDB.Ping() == nil {
			dbStatus = "connected"
		}
	}
	status := "ok"
	if dbStatus != "connected" {
		status = "degraded"
	}
	return c.JSON(fiber.Map{
		"status":        status,
		"uptimeSeconds": int64(time.Since(startedAt).Seconds()),
		"dependencies": fiber.Map{
			"database": fiber.Map{"status": dbStatus},
		},
	})
}
