package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schedule_notification_bot/internal/app"
	"schedule_notification_bot/internal/infra/config"
	idb "schedule_notification_bot/internal/infra/database"
	"schedule_notification_bot/internal/infra/httpserver"
	"schedule_notification_bot/internal/infra/logger"
	"schedule_notification_bot/internal/infra/scheduler"
	"schedule_notification_bot/internal/infra/storage"
	"schedule_notification_bot/internal/infra/telegram"
	"schedule_notification_bot/internal/infra/xlsx"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Schedule Notification Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg)
	mainLogger := logger.Log.WithField("component", "main")
	mainLogger.WithField("environment", cfg.Environment).Info("Configuration loaded")

	profile, err := config.LoadTimetableProfile(cfg.TimetableProfileFile)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not load timetable profile")
	}
	mainLogger.WithField("roster_size", len(profile.Roster)).Info("Timetable profile loaded and validated")

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not connect to database")
	}
	defer db.Close()
	mainLogger.Info("Database connection established")

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := idb.EnsureSchema(startupCtx, db); err != nil {
		cancelStartup()
		mainLogger.WithError(err).Fatal("Could not ensure database schema")
	}
	cancelStartup()

	// Initialize Repositories
	snapshotRepo := idb.NewPostgresSnapshotRepository(db, time.Duration(cfg.SnapshotCacheMinutes)*time.Minute)
	recipientRepo := idb.NewPostgresRecipientRepository(db)
	mainLogger.Info("Repositories initialized")

	// Initialize blob archive
	archive, err := storage.NewMinIOArchive(storage.Options{
		Endpoint:  cfg.MinIOEndpoint,
		AccessKey: cfg.MinIOAccessKey,
		SecretKey: cfg.MinIOSecretKey,
		Bucket:    cfg.MinIOBucket,
		UseSSL:    cfg.MinIOUseSSL,
	})
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not initialize workbook archive")
	}
	bucketCtx, cancelBucket := context.WithTimeout(context.Background(), 30*time.Second)
	if err := archive.EnsureBucket(bucketCtx); err != nil {
		mainLogger.WithError(err).Error("Could not ensure archive bucket, uploads will fail to archive")
	}
	cancelBucket()

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			entry := logger.Log.WithError(err).WithField("component", "telebot")
			if c != nil && c.Sender() != nil {
				entry = entry.WithField("sender_id", c.Sender().ID)
			}
			entry.Error("Telegram handler error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	tgClient := telegram.NewTelebotAdapter(bot)

	// Initialize Services
	profileService := app.NewProfileService(recipientRepo, profile, logger.Log.WithField("component", "profile_service"))
	scheduleService := app.NewScheduleService(
		snapshotRepo,
		recipientRepo,
		archive,
		xlsx.Opener{},
		tgClient,
		profile,
		cfg.AdminTelegramIDs,
		cfg.MaxUploadBytes,
		logger.Log.WithField("component", "schedule_service"),
	)
	mainLogger.Info("Services initialized")

	// Initialize morning digest scheduler
	digestScheduler := scheduler.NewDigestScheduler(
		scheduleService,
		logger.Log.WithField("component", "scheduler"),
		cfg.CronSpecMorning,
	)
	digestScheduler.Start()

	// Register Handlers
	handlerCtx, cancelHandlers := context.WithCancel(context.Background())
	baseHandlerLogger := logger.Log.WithField("component", "telegram")
	telegram.RegisterBotCommands(handlerCtx, bot, cfg, profileService, baseHandlerLogger)
	telegram.RegisterTextHandlers(handlerCtx, bot, profileService, scheduleService, baseHandlerLogger)
	telegram.RegisterUploadHandlers(handlerCtx, bot, cfg, scheduleService, baseHandlerLogger)
	mainLogger.Info("Telegram handlers registered")

	// Status endpoint
	httpServer := httpserver.New(cfg)
	go func() {
		mainLogger.WithField("addr", httpServer.Addr).Info("Status endpoint listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			mainLogger.WithError(err).Error("HTTP server stopped")
		}
	}()

	mainLogger.Info("Application setup complete. Bot is starting...")
	go bot.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	mainLogger.Info("Shutting down application...")
	cancelHandlers()
	digestScheduler.Stop()
	bot.Stop()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		mainLogger.WithError(err).Error("HTTP server shutdown failed")
	}

	mainLogger.Info("Application shut down gracefully")
}
