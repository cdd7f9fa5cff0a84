// Command seed loads the initial gallery submissions.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/configs"
	database "gloopclub_backend/internals/databases"
	"gloopclub_backend/internals/seeds"
	"gloopclub_backend/internals/server"
)

func main() {
	file := flag.String("file", "", "seed JSON file (defaults to the bundled gallery)")
	imageBase := flag.String("image-base", "http://localhost:5173", "origin serving the /images paths of the bundled gallery")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	cfg, err := configs.LoadEnv()
	if err != nil {
		logrus.WithError(err).Fatal("❌ invalid configuration")
	}
	log := configs.NewLogger(cfg)

	if err := run(cfg, log, *file, *imageBase, *timeout); err != nil {
		log.WithError(err).Error("❌ seeding failed")
		os.Exit(1)
	}
	log.Info("✅ seeding complete")
}

func run(cfg *configs.Config, log logrus.FieldLogger, file, imageBase string, timeout time.Duration) error {
	db, store, err := server.OpenStorage(cfg, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Info("🌱 seeding database...")
	return seeds.RunAllSeeds(ctx, store, log, file, imageBase)
}
