package seeds

import (
	"context"
	_ "embed"
	"os"

	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/features/submissions/storage"
	submissions "gloopclub_backend/internals/seeds/submissions"
)

//go:embed submissions/data_submissions.json
var submissionsData []byte

// RunAllSeeds loads the bundled gallery seeds, or submissionsFile when non-empty.
// imageBase is the origin serving the gallery's /images paths.
func RunAllSeeds(ctx context.Context, store storage.Storage, log logrus.FieldLogger, submissionsFile, imageBase string) error {
	data := submissionsData
	if submissionsFile != "" {
		log.Info("📥 reading file: ", submissionsFile)
		raw, err := os.ReadFile(submissionsFile)
		if err != nil {
			return err
		}
		data = raw
	}

	//* Submissions
	if _, err := submissions.SeedSubmissions(ctx, store, log, data, imageBase); err != nil {
		return err
	}
	return nil
}
