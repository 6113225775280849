package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"social-media-backend/config"
	"social-media-backend/internal/api"
	"social-media-backend/internal/middleware"
	"social-media-backend/internal/service"
)

// Server is the HTTP server with all handlers wired up.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New assembles services and routes. redisClient and s3Config may be nil;
// the affected features (rate limiting, uploads) degrade instead of failing
// startup.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config) *Server {
	router := gin.Default()
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	postService := service.NewPostService(db)

	var images service.ImageUploader = service.DisabledImageService{}
	if s3Config != nil {
		images = service.NewImageService(s3Config)
	}

	var limiter *middleware.RateLimiter
	if redisClient != nil {
		limiter = middleware.NewPostCreationRateLimiter(redisClient)
	}

	api.RegisterRoutes(router, authService, profileService, postService, images, limiter)

	return &Server{
		cfg:    cfg,
		router: router,
	}
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
