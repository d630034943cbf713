package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kscst/vocational-training-backend/internal/config"
	"github.com/kscst/vocational-training-backend/internal/database"
	"github.com/kscst/vocational-training-backend/internal/handler"
	"github.com/kscst/vocational-training-backend/internal/logger"
	"github.com/kscst/vocational-training-backend/internal/middleware"
	"github.com/kscst/vocational-training-backend/internal/repository"
	"github.com/kscst/vocational-training-backend/internal/router"
	"github.com/kscst/vocational-training-backend/internal/service"
	"github.com/kscst/vocational-training-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Vocational Training Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	traineeRepo := repository.NewTraineeRepository(pool)
	trainerRepo := repository.NewTrainerRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	materialRepo := repository.NewMaterialRepository(pool)
	playlistRepo := repository.NewPlaylistRepository(pool)
	progressRepo := repository.NewProgressRepository(pool)
	certificateRepo := repository.NewCertificateRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	files := service.NewLocalFileStore(cfg.UploadDir)
	renderer := service.NewPDFRenderer(cfg.CertFontPath)

	authService := service.NewAuthService(cfg, traineeRepo, trainerRepo, adminRepo)
	adminService := service.NewAdminService(traineeRepo, trainerRepo)
	trainerService := service.NewTrainerService(trainerRepo, traineeRepo)
	traineeService := service.NewTraineeService(traineeRepo, materialRepo, playlistRepo)
	contentService := service.NewContentService(materialRepo, playlistRepo, files, cfg.MaxUploadBytes, log)
	progressService := service.NewProgressService(traineeRepo, materialRepo, playlistRepo, progressRepo)
	certificateService := service.NewCertificateService(traineeRepo, certificateRepo, progressService, renderer, files, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Admin:       handler.NewAdminHandler(adminService, progressService, certificateService),
		Trainer:     handler.NewTrainerHandler(trainerService, contentService),
		Trainee:     handler.NewTraineeHandler(traineeService, progressService, certificateService),
		Certificate: handler.NewCertificateHandler(certificateService),
	}

	// Rate limiter for auth routes, counted in Redis per client IP.
	authLimiter := middleware.NewRateLimiter(rdb, cfg.AuthRateLimit, cfg.AuthRateWindow, log)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, authLimiter, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
