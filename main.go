package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dive-booking/catalog"
	"dive-booking/config"
	"dive-booking/controllers"
	"dive-booking/routes"
	"dive-booking/schedule"
	"dive-booking/services"
	"dive-booking/utils"
	"dive-booking/wizard"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	utils.InitializeLogger(cfg.IsProduction(), cfg.LogLevel)
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	cat := catalog.Default()
	rules := schedule.NewRules(cfg.Location())

	bookingStore, err := newBookingStore(cfg, logger)
	if err != nil {
		logger.Fatal("booking store setup failed", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	sessionStore, err := newSessionStore(cfg, logger)
	if err != nil {
		logger.Fatal("session store setup failed", zap.String("driver", cfg.SessionStore), zap.Error(err))
	}

	bookingService := services.NewBookingService(bookingStore, cat, rules, services.NewMailNotifier(cfg), logger)
	wizardService := services.NewWizardService(sessionStore, bookingService)

	router := routes.SetupRouter(cfg, logger,
		controllers.NewBookingController(bookingService),
		controllers.NewWizardController(wizardService),
		controllers.NewCatalogController(cat, rules),
	)

	addr := ":" + cfg.AppPort
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}

func newBookingStore(cfg config.Config, logger *zap.Logger) (services.BookingStore, error) {
	switch cfg.StoreDriver {
	case "memory":
		logger.Warn("using in-memory booking store; bookings are lost on restart")
		return services.NewMemoryBookingStore(), nil
	default:
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("database connection established and migrations applied")
		return services.NewGormBookingStore(db), nil
	}
}

func newSessionStore(cfg config.Config, logger *zap.Logger) (wizard.SessionStore, error) {
	switch cfg.SessionStore {
	case "redis":
		client, err := config.ConnectRedis(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("wizard sessions stored in redis", zap.String("addr", cfg.RedisAddr))
		return wizard.NewRedisSessionStore(client, cfg.SessionTTL()), nil
	default:
		return wizard.NewMemorySessionStore(cfg.SessionTTL()), nil
	}
}
