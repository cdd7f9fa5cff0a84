package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"gloopclub_backend/internals/configs"
	database "gloopclub_backend/internals/databases"
	"gloopclub_backend/internals/databases/migrations"
	"gloopclub_backend/internals/features/notifications/mailer"
	"gloopclub_backend/internals/features/submissions/storage"
)

// Runtime owns the process-wide collaborators and their lifecycle.
type Runtime struct {
	Config *configs.Config
	Log    *logrus.Logger
	DB     *gorm.DB
	Store  *storage.GormStorage
	Mailer mailer.Forwarder
	App    *fiber.App
}

// OpenStorage opens the pool, applies migrations (AUTO_MIGRATE) and returns the gateway.
func OpenStorage(cfg *configs.Config, log logrus.FieldLogger) (*gorm.DB, *storage.GormStorage, error) {
	log.Info("🔌 connecting to PostgreSQL...")
	db, err := database.Open(cfg.DSN(), configs.NewGormLogger(log))
	if err != nil {
		return nil, nil, err
	}
	log.Info("✅ DB connected")

	if cfg.AutoMigrate {
		if err := migrations.Up(cfg.DSN()); err != nil {
			_ = database.Close(db)
			return nil, nil, err
		}
		log.Info("✅ migrations applied")
	}

	return db, storage.NewGormStorage(db), nil
}

// Bootstrap builds the storage gateway, the mailer and the app.
func Bootstrap(cfg *configs.Config, log *logrus.Logger) (*Runtime, error) {
	db, store, err := OpenStorage(cfg, log)
	if err != nil {
		return nil, err
	}

	fwd := mailer.New(mailer.Options{
		APIKey: cfg.ResendAPIKey,
		From:   cfg.NotifyFrom,
		To:     cfg.NotifyTo,
	}, log)

	app, err := New(cfg, log, store, fwd)
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("build app: %w", err)
	}

	return &Runtime{Config: cfg, Log: log, DB: db, Store: store, Mailer: fwd, App: app}, nil
}

// Close releases the connection pool.
func (r *Runtime) Close() error {
	return database.Close(r.DB)
}
