package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/auth"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/config"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/database"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/handlers"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/jobs"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/mail"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/revalidate"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/scheduler"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/service"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
)

const shutdownTimeout = 15 * time.Second

func main() {
	runOnce := flag.String("run-once", "", fmt.Sprintf("run a single job and exit (one of %v)", jobs.Names()))
	flag.Parse()

	if err := run(*runOnce); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(runOnce string) error {
	// Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger.Initialize(cfg.LogLevel, cfg.LogFormat)

	// Connect to Database
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := connectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	transport, err := newMailTransport(cfg, redisClient)
	if err != nil {
		return err
	}
	defer transport.Close()

	discordNotifier := newNotifier(cfg)
	st := store.New(db)

	notifications := service.NewNotificationService(st, discordNotifier, cfg.PromotionLead)
	jobRunner := jobs.NewJobRunner(notifications)
	if runOnce != "" {
		return jobRunner.Run(runOnce)
	}

	uploader := newUploader(ctx, cfg)
	revalidator := revalidate.New(cfg.PublicSiteRevalidateURL, cfg.PublicSiteRevalidateSecret)
	defer revalidator.Wait()

	email := service.NewEmailService(st, transport, service.EmailOptions{
		Logo:          mail.ResolveLogo(cfg.LogoURL(), cfg.EmailAssetsDir),
		SiteBaseURL:   cfg.PublicSiteBaseURL,
		DefaultLocale: cfg.DefaultLocale,
		Notifier:      discordNotifier,
	})

	authHandler := auth.NewAuthHandler(cfg, db)
	router := handlers.NewRouter(handlers.Handlers{
		Auth:          authHandler,
		APIKeys:       handlers.NewAPIKeyHandler(db, authHandler),
		Bookings:      handlers.NewBookingHandler(service.NewBookingService(st), email),
		Quotes:        handlers.NewQuoteHandler(service.NewQuoteService(st), email),
		Cars:          handlers.NewCarHandler(service.NewCarService(st, revalidator)),
		Notifications: handlers.NewNotificationHandler(notifications),
		Uploads:       handlers.NewUploadHandler(uploader),
		UploadLimiter: handlers.NewRateLimiter(cfg.UploadRatePerMinute),
	}, handlers.RouterOptions{
		EnableCORS:  cfg.EnableCORS,
		CORSOrigins: cfg.CORSOrigins,
	})

	sched, err := scheduler.NewScheduler(jobRunner, scheduler.Schedules{
		PromoteNotifications: cfg.PromotionSchedule,
	})
	if err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
