// Command moderate sets the status of one submission.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/configs"
	database "gloopclub_backend/internals/databases"
	"gloopclub_backend/internals/features/submissions/storage"
	"gloopclub_backend/internals/features/submissions/submissions/model"
	"gloopclub_backend/internals/server"
)

func main() {
	id := flag.Int64("id", 0, "submission id")
	status := flag.String("status", "", "pending|approved|rejected")
	flag.Parse()

	if *id <= 0 || !model.SubmissionStatus(*status).Valid() {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := configs.LoadEnv()
	if err != nil {
		logrus.WithError(err).Fatal("❌ invalid configuration")
	}
	log := configs.NewLogger(cfg)

	if err := run(cfg, log, *id, model.SubmissionStatus(*status)); err != nil {
		log.WithError(err).Error("❌ moderation failed")
		os.Exit(1)
	}
}

func run(cfg *configs.Config, log logrus.FieldLogger, id int64, status model.SubmissionStatus) error {
	db, store, err := server.OpenStorage(cfg, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return moderate(ctx, store, log, id, status)
}

func moderate(ctx context.Context, store storage.Storage, log logrus.FieldLogger, id int64, status model.SubmissionStatus) error {
	row, err := store.UpdateSubmissionStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("submission %d not found", id)
	}

	log.WithFields(logrus.Fields{"id": row.ID, "title": row.Title}).Infof("✅ status set to %s", row.Status)
	return nil
}
