package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"gloopclub_backend/internals/features/submissions/storage"
)

func BaseRoutes(app *fiber.App, store storage.Storage, environment string) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Gloop Club API 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    environment,
		})
	})
}
