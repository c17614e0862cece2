package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"educare/auth"
	"educare/config"
	"educare/database"
	"educare/logger"
	"educare/metrics"
	"educare/middleware"
	"educare/random"
	"educare/routers"
	"educare/services"
	"educare/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	store, closeStore, err := database.OpenStore(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to open key-value store", zap.String("backend", cfg.KVBackend), zap.Error(err))
	}
	defer closeStore()

	var provider auth.Provider
	switch cfg.AuthProvider {
	case "gotrue":
		provider = auth.NewGoTrueProvider(cfg.GoTrueURL, cfg.GoTrueServiceKey, cfg.GoTrueAnonKey)
	default:
		provider = auth.NewLocalProvider(store, cfg.JWTKey, cfg.TokenTTL, cfg.SaltRound)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	mailer := utils.NewMailer(cfg.SendGridAPIKey, cfg.EmailSender, zlog)
	profiles := services.NewProfileService(store, provider, mailer, m, zlog.Named("profiles"))
	bank := services.NewQuizBank(store, random.NewTimeSeeded(), m, zlog.Named("quiz"))

	if cfg.QuizSeedOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := bank.Seed(ctx); err != nil {
			zlog.Error("initial quiz seeding failed", zap.Error(err))
		}
		cancel()
	}

	scheduler, err := utils.StartQuizSeedScheduler(cfg.QuizSeedSchedule, bank, zlog)
	if err != nil {
		zlog.Fatal("invalid QUIZ_SEED_SCHEDULE", zap.String("schedule", cfg.QuizSeedSchedule), zap.Error(err))
	}
	if scheduler != nil {
		defer scheduler.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:      "educare",
		BodyLimit:    utils.MaxPhotoSize + 1<<20,
		ErrorHandler: middleware.ErrorHandler(zlog),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	routers.Setup(app, cfg.APIPrefix, routers.Deps{
		Profiles: profiles,
		Bank:     bank,
		Metrics:  m,
		Log:      zlog,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		zlog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("server is running",
		zap.String("port", cfg.Port),
		zap.String("prefix", cfg.APIPrefix),
		zap.String("kvBackend", cfg.KVBackend),
		zap.String("authProvider", cfg.AuthProvider))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
