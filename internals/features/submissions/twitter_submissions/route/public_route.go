package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/features/notifications/mailer"
	"gloopclub_backend/internals/features/submissions/storage"
	"gloopclub_backend/internals/features/submissions/twitter_submissions/controller"
)

// TwitterSubmissionPublicRoutes: /api/twitter-submissions (no auth)
func TwitterSubmissionPublicRoutes(api fiber.Router, store storage.Storage, fwd mailer.Forwarder, policy mailer.FailurePolicy, log logrus.FieldLogger, writeGuard fiber.Handler) {
	twitterCtrl := controller.NewTwitterSubmissionController(store, fwd, policy, log)

	api.Post("/twitter-submissions", writeGuard, twitterCtrl.CreateTwitterSubmission)
}
