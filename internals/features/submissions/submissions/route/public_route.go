package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/features/submissions/storage"
	"gloopclub_backend/internals/features/submissions/submissions/controller"
)

// SubmissionPublicRoutes: /api/submissions (no auth). writeGuard wraps the POST only.
func SubmissionPublicRoutes(api fiber.Router, store storage.Storage, log logrus.FieldLogger, writeGuard fiber.Handler) {
	submissionCtrl := controller.NewSubmissionController(store, log)

	public := api.Group("/submissions")
	public.Get("/", submissionCtrl.GetAllSubmissions)             // 📄 gallery
	public.Post("/", writeGuard, submissionCtrl.CreateSubmission) // ➕ submit artwork
	public.Get("/:id", submissionCtrl.GetSubmissionByID)          // 🔍 detail
}
