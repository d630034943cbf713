package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kscst/vocational-training-backend/internal/config"
	"github.com/kscst/vocational-training-backend/internal/handler"
	"github.com/kscst/vocational-training-backend/internal/middleware"
	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/kscst/vocational-training-backend/internal/response"
	"github.com/kscst/vocational-training-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	Admin       *handler.AdminHandler
	Trainer     *handler.TrainerHandler
	Trainee     *handler.TraineeHandler
	Certificate *handler.CertificateHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	authLimiter *middleware.RateLimiter,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Serve uploaded material files statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/trainee/register", handlers.Auth.RegisterTrainee)
		auth.POST("/trainer/register", handlers.Auth.RegisterTrainer)
		auth.POST("/login", handlers.Auth.Login)
	}

	// ─── 2. Admin Group ────────────────────────────────────────────────
	adminAPI := router.Group("/api/admin")
	adminAPI.Use(
		middleware.Authenticate(authService),
		middleware.RequireRole(model.RoleAdmin),
	)
	{
		adminAPI.GET("/trainees", handlers.Admin.ListTrainees)
		adminAPI.GET("/trainers", handlers.Admin.ListTrainers)
		adminAPI.GET("/trainers/approved", handlers.Admin.ListApprovedTrainers)
		adminAPI.DELETE("/trainee/:id", handlers.Admin.DeleteTrainee)
		adminAPI.DELETE("/trainer/:id", handlers.Admin.DeleteTrainer)
		adminAPI.PUT("/trainee/approve/:id", handlers.Admin.ApproveTrainee)
		adminAPI.PUT("/trainee/reject/:id", handlers.Admin.RejectTrainee)
		adminAPI.PUT("/trainer/approve/:id", handlers.Admin.ApproveTrainer)
		adminAPI.PUT("/trainer/reject/:id", handlers.Admin.RejectTrainer)
		adminAPI.GET("/progress", handlers.Admin.AllProgress)
		adminAPI.POST("/certificate/:traineeId", handlers.Admin.IssueCertificate)
	}

	// ─── 3. Trainer Group ──────────────────────────────────────────────
	trainerAPI := router.Group("/api/trainer")
	trainerAPI.Use(
		middleware.Authenticate(authService),
		middleware.RequireRole(model.RoleTrainer),
	)
	{
		trainerAPI.GET("/profile", handlers.Trainer.Profile)
		trainerAPI.PUT("/profile", handlers.Trainer.UpdateProfile)
		trainerAPI.GET("/trainees", handlers.Trainer.AssignedTrainees)
		trainerAPI.GET("/materials", handlers.Trainer.ListMaterials)
		trainerAPI.POST("/materials", handlers.Trainer.UploadMaterial)
		trainerAPI.PUT("/materials/:id", handlers.Trainer.UpdateMaterial)
		trainerAPI.DELETE("/materials/:id", handlers.Trainer.DeleteMaterial)
		trainerAPI.GET("/playlists", handlers.Trainer.ListPlaylists)
		trainerAPI.POST("/playlists", handlers.Trainer.CreatePlaylist)
		trainerAPI.PUT("/playlists/:id", handlers.Trainer.UpdatePlaylist)
		trainerAPI.DELETE("/playlists/:id", handlers.Trainer.DeletePlaylist)
	}

	// ─── 4. Trainee Group (Any Authenticated Principal) ────────────────
	// No role gate here: a non-trainee principal's ID resolves to no
	// trainee, so every handler in the group answers not-found instead of
	// revealing the namespace.
	traineeAPI := router.Group("/api/trainee")
	traineeAPI.Use(middleware.Authenticate(authService))
	{
		traineeAPI.GET("/profile", handlers.Trainee.Profile)
		traineeAPI.PUT("/profile", handlers.Trainee.UpdateProfile)
		traineeAPI.GET("/materials", handlers.Trainee.Materials)
		traineeAPI.GET("/playlists", handlers.Trainee.Playlists)
		traineeAPI.POST("/progress", handlers.Trainee.MarkMaterialProgress)
		traineeAPI.POST("/video-progress", handlers.Trainee.MarkVideoProgress)
		traineeAPI.GET("/progress", handlers.Trainee.Progress)
		traineeAPI.GET("/progress/summary", handlers.Trainee.ProgressSummary)
		traineeAPI.GET("/certificate", handlers.Trainee.Certificate)
	}

	// ─── 5. Certificate Downloads (Any Authenticated Principal) ───────
	certAPI := router.Group("/api/certificates")
	certAPI.Use(middleware.Authenticate(authService))
	{
		certAPI.GET("/:filename", handlers.Certificate.Download)
	}

	return router
}
