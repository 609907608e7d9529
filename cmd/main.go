package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ichewm/MedicalBible-sub005/internal/auth/jwt"
	"github.com/ichewm/MedicalBible-sub005/internal/cache/redis"
	"github.com/ichewm/MedicalBible-sub005/internal/config"
	"github.com/ichewm/MedicalBible-sub005/internal/ctrl"
	"github.com/ichewm/MedicalBible-sub005/internal/observability/metrics/prometheus"
	"github.com/ichewm/MedicalBible-sub005/internal/observability/tracing/jaeger"
	"github.com/ichewm/MedicalBible-sub005/internal/repo/db"
	"go.uber.org/zap"
)

const configPath = "configs/local.config.yaml"

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	signer := jwt.New(conf)
	svc := ctrl.New(signer, repo, cache, conf)

	zap.L().Info(
		"Token service is running",
		zap.String("service", conf.ServiceName),
		zap.Duration("familyLifetime", conf.Token.FamilyLifetime),
		zap.Duration("sweepInterval", conf.Token.SweepInterval),
	)
	go svc.StartSweeper(ctx, conf.Token.SweepInterval)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	cancel()

	if err := cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err := repo.Close(context.Background()); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	os.Exit(0)
}
