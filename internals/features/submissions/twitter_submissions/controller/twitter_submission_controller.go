package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/features/notifications/mailer"
	"gloopclub_backend/internals/features/submissions/storage"
	"gloopclub_backend/internals/features/submissions/twitter_submissions/dto"
	helper "gloopclub_backend/internals/helpers"
	"gloopclub_backend/internals/metrics"
)

type TwitterSubmissionController struct {
	Store  storage.Storage
	Mailer mailer.Forwarder
	Policy mailer.FailurePolicy
	Log    logrus.FieldLogger
}

func NewTwitterSubmissionController(store storage.Storage, fwd mailer.Forwarder, policy mailer.FailurePolicy, log logrus.FieldLogger) *TwitterSubmissionController {
	return &TwitterSubmissionController{Store: store, Mailer: fwd, Policy: policy, Log: log}
}

// =======================
// ➕ Create Twitter Submission
// POST /api/twitter-submissions
// =======================
func (ctrl *TwitterSubmissionController) CreateTwitterSubmission(c *fiber.Ctx) error {
	var body dto.CreateTwitterSubmissionRequest
	if violations := body.Bind(c.Body()); violations != nil {
		return helper.JsonValidationError(c, violations)
	}

	entry := ctrl.Log.WithField("request_id", helper.RequestID(c))

	row, err := ctrl.Store.CreateTwitterSubmission(c.UserContext(), body.ToInput())
	if err != nil {
		entry.WithField("op", "create twitter submission").WithError(err).Error("❌ storage fault")
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	metrics.SubmissionsCreated.WithLabelValues("twitter").Inc()

	// Only after the row is persisted.
	notice := mailer.TwitterNotice{TwitterHandle: row.TwitterHandle, QuoteContent: row.QuoteContent}
	if err := ctrl.Mailer.ForwardTwitterSubmission(c.UserContext(), notice); err != nil {
		entry.WithFields(logrus.Fields{
			"twitter_submission_id": row.ID,
			"policy":                ctrl.Policy,
		}).WithError(err).Error("❌ notification fault")
		if ctrl.Policy == mailer.PolicyFail {
			return helper.JsonError(c, fiber.StatusInternalServerError, "")
		}
	}

	return helper.JsonCreated(c, dto.CreatedResponse{Success: true})
}
