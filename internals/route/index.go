// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/features/notifications/mailer"
	"gloopclub_backend/internals/features/submissions/storage"
	"gloopclub_backend/internals/metrics"
	rateLimiter "gloopclub_backend/internals/middlewares"
	routeDetails "gloopclub_backend/internals/route/details"
)

// Deps are the collaborators every route needs, built once at startup.
type Deps struct {
	Store         storage.Storage
	Mailer        mailer.Forwarder
	NotifyPolicy  mailer.FailurePolicy
	Log           logrus.FieldLogger
	Environment   string
	RateLimitMax  int
	RateLimitSpan time.Duration
	Metrics       bool
}

var startTime time.Time

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	d.Log.Info("Setting up BaseRoutes...")
	BaseRoutes(app, d.Store, d.Environment)

	if d.Metrics {
		app.Get("/metrics", metrics.Handler())
	}

	// ===================== PUBLIC =====================
	d.Log.Info("Mounting Submission routes...")
	public := app.Group("/api")
	writeGuard := rateLimiter.SubmissionRateLimiter(d.RateLimitMax, d.RateLimitSpan)
	routeDetails.SubmissionPublicRoutes(public, d.Store, d.Mailer, d.NotifyPolicy, d.Log, writeGuard)
}
