package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/features/submissions/storage"
	"gloopclub_backend/internals/features/submissions/submissions/dto"
	helper "gloopclub_backend/internals/helpers"
	"gloopclub_backend/internals/metrics"
)

type SubmissionController struct {
	Store storage.Storage
	Log   logrus.FieldLogger
}

func NewSubmissionController(store storage.Storage, log logrus.FieldLogger) *SubmissionController {
	return &SubmissionController{Store: store, Log: log}
}

// =======================
// ➕ Create Submission
// POST /api/submissions
// =======================
func (ctrl *SubmissionController) CreateSubmission(c *fiber.Ctx) error {
	var body dto.CreateSubmissionRequest
	if violations := body.Bind(c.Body()); violations != nil {
		return helper.JsonValidationError(c, violations)
	}

	submission, err := ctrl.Store.CreateSubmission(c.UserContext(), body.ToInput())
	if err != nil {
		ctrl.logFault(c, "create submission", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	metrics.SubmissionsCreated.WithLabelValues("submission").Inc()
	return helper.JsonCreated(c, submission)
}

// =======================
// 📄 Get All Submissions
// GET /api/submissions
// =======================
func (ctrl *SubmissionController) GetAllSubmissions(c *fiber.Ctx) error {
	submissions, err := ctrl.Store.ListSubmissions(c.UserContext())
	if err != nil {
		ctrl.logFault(c, "list submissions", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonList(c, submissions)
}

// =============================
// 🔍 Get Submission by ID
// GET /api/submissions/:id
// =============================
func (ctrl *SubmissionController) GetSubmissionByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	submission, err := ctrl.Store.GetSubmission(c.UserContext(), id)
	if err != nil {
		ctrl.logFault(c, "get submission", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	if submission == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
	}
	return helper.JsonOK(c, submission)
}

func (ctrl *SubmissionController) logFault(c *fiber.Ctx, op string, err error) {
	ctrl.Log.WithFields(logrus.Fields{
		"request_id": helper.RequestID(c),
		"op":         op,
	}).WithError(err).Error("❌ storage fault")
}
