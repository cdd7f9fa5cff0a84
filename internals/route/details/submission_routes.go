package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/features/notifications/mailer"
	"gloopclub_backend/internals/features/submissions/storage"
	submissionRoutes "gloopclub_backend/internals/features/submissions/submissions/route"
	twitterRoutes "gloopclub_backend/internals/features/submissions/twitter_submissions/route"
)

// ✅ Public submission routes (no token)
// e.g. /api/submissions, /api/twitter-submissions
func SubmissionPublicRoutes(api fiber.Router, store storage.Storage, fwd mailer.Forwarder, policy mailer.FailurePolicy, log logrus.FieldLogger, writeGuard fiber.Handler) {
	submissionRoutes.SubmissionPublicRoutes(api, store, log, writeGuard)
	twitterRoutes.TwitterSubmissionPublicRoutes(api, store, fwd, policy, log, writeGuard)
}
