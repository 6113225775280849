package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"social-media-backend/internal/middleware"
	"social-media-backend/internal/service"
	"social-media-backend/pkg/logger"
)

// HealthCheck returns the health status of the API.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Social media API is running",
	})
}

// RegisterRoutes wires all handlers under /api/v1. limiter may be nil when
// redis is unavailable; post creation then runs unthrottled.
func RegisterRoutes(router *gin.Engine, auth service.IAuthService, profiles service.IProfileService, posts service.IPostService, images service.ImageUploader, limiter *middleware.RateLimiter) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")

	NewAuthHandler(auth).RegisterRoutes(v1)
	NewProfileHandler(profiles, auth, images).RegisterRoutes(v1)
	NewPostHandler(posts, profiles, auth, images, limiter).RegisterRoutes(v1)
}

// currentUserID pulls the authenticated user's id set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses a uuid path parameter.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// serviceError maps service errors onto HTTP status codes.
func serviceError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not have permission to modify this " + resource})
	case errors.Is(err, service.ErrProfileExists),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrPostNameTaken),
		errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("unhandled service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
