// Package server builds the one Fiber app served by both the long-running
// process (main.go) and the Lambda adapter (cmd/lambda).
package server

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/configs"
	"gloopclub_backend/internals/features/notifications/mailer"
	"gloopclub_backend/internals/features/submissions/storage"
	helper "gloopclub_backend/internals/helpers"
	"gloopclub_backend/internals/metrics"
	middlewares "gloopclub_backend/internals/middlewares"
	requestLogger "gloopclub_backend/internals/middlewares/logger"
	routes "gloopclub_backend/internals/route"
)

// New wires middlewares and routes around already-constructed collaborators.
func New(cfg *configs.Config, log *logrus.Logger, store storage.Storage, fwd mailer.Forwarder) (*fiber.App, error) {
	policy, err := mailer.ParsePolicy(cfg.NotifyFailurePolicy)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          errorHandler(log),
	})

	// ⚙️ middleware dasar + performa
	app.Use(middlewares.RecoveryMiddleware(!cfg.IsProduction()))
	app.Use(middlewares.RequestIDMiddleware())
	app.Use(requestLogger.LoggerMiddleware(log.WriterLevel(logrus.InfoLevel)))
	app.Use(middlewares.CorsMiddleware(cfg.CorsAllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.TimeoutMiddleware(cfg.RequestTimeout))
	if cfg.MetricsEnabled {
		app.Use(metrics.Middleware())
	}

	routes.SetupRoutes(app, routes.Deps{
		Store:         store,
		Mailer:        fwd,
		NotifyPolicy:  policy,
		Log:           log,
		Environment:   cfg.Environment,
		RateLimitMax:  cfg.RateLimitMax,
		RateLimitSpan: cfg.RateLimitWindow,
		Metrics:       cfg.MetricsEnabled,
	})

	return app, nil
}

// errorHandler renders stray errors and panics as {"error": ...}.
func errorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := helper.InternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.WithField("request_id", helper.RequestID(c)).WithError(err).Error("❌ unhandled error")
		}
		return helper.JsonError(c, code, message)
	}
}
