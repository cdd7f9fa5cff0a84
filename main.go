package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/configs"
	"gloopclub_backend/internals/server"
)

func main() {
	cfg, err := configs.LoadEnv()
	if err != nil {
		logrus.WithError(err).Fatal("❌ invalid configuration")
	}
	log := configs.NewLogger(cfg)

	rt, err := server.Bootstrap(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("❌ bootstrap failed")
	}
	app := rt.App

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Infof("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.WithError(err).Warn("shutdown")
	}
	if err := rt.Close(); err != nil {
		log.WithError(err).Warn("close db pool")
	}
	log.Info("👋 bye")
}
