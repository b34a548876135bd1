package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/app"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/cache"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/config"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/controller"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/controller/rest"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/service"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting tutor booking server",
		zap.String("environment", cfg.Environment),
		zap.String("http_addr", cfg.HTTPAddr),
	)

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("✅ Connected to database")

	migrator, err := app.NewMigrator(pool, cfg.MigrationsDir, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		return err
	}

	var tutorCache service.TutorCache = cache.NopTutorCache{}
	if cfg.RedisAddr != "" {
		client, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer client.Close()

		tutorCache = cache.NewRedisTutorCache(client, cfg.CacheTTL)
		logger.Info("✅ Tutor cache enabled", zap.String("redis_addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	}

	adminRepo := repository.NewAdminRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	tutorRepo := repository.NewTutorRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	studentService := service.NewStudentService(studentRepo, logger)
	tutorService := service.NewTutorService(tutorRepo, tutorCache, logger)
	bookingService := service.NewBookingService(studentRepo, tutorRepo, bookingRepo, logger)
	adminService := service.NewAdminService(adminRepo, studentService, tutorService, bookingService, logger)

	if cfg.SeedFile != "" {
		seed, err := app.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return err
		}
		if err := app.NewSeeder(adminService, tutorService, logger).Apply(ctx, seed); err != nil {
			return err
		}
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers := rest.NewHandlers(adminService, studentService, tutorService, bookingService, logger)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID", "Content-Disposition"},
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           corsHandler.Handler(handlers.Router()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if cfg.TelegramToken != "" {
		startAdminBot(ctx, cfg, adminService, bookingService, logger)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("🚀 HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("Server stopped")
	return nil
}

// startAdminBot запускает бота в фоне; ошибка бота не останавливает HTTP сервер
func startAdminBot(
	ctx context.Context,
	cfg *config.Config,
	adminService *service.AdminService,
	bookingService *service.BookingService,
	logger *zap.Logger,
) {
	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Error("Failed to create admin bot, continuing without it", zap.Error(err))
		return
	}

	botController := controller.NewBotController(botInstance, adminService, bookingService, cfg.AdminChatIDs, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Admin bot commands menu not set", zap.Error(err))
	}

	go botController.Start(ctx)
}
