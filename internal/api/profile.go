package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"social-media-backend/internal/middleware"
	"social-media-backend/internal/service"
	"social-media-backend/internal/types"
)

type ProfileHandler struct {
	profileService service.IProfileService
	authService    service.IAuthService
	images         service.ImageUploader
}

func NewProfileHandler(profileService service.IProfileService, authService service.IAuthService, images service.ImageUploader) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		authService:    authService,
		images:         images,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profiles := router.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware(h.authService))
	{
		profiles.GET("", h.List)
		profiles.POST("", h.Create)
		profiles.GET("/:id", h.Get)
		profiles.PUT("/:id", h.Update)
		profiles.DELETE("/:id", h.Delete)
		profiles.POST("/:id/avatar", h.UploadAvatar)
		profiles.POST("/:id/follow", h.Follow)
		profiles.POST("/:id/unfollow", h.Unfollow)
		profiles.GET("/:id/followers", h.Followers)
		profiles.GET("/:id/following", h.Following)
		profiles.GET("/:id/posts", h.Posts)
		profiles.GET("/:id/following_posts", h.FollowingPosts)
		profiles.GET("/:id/liked_posts", h.LikedPosts)
	}
}

// callerProfile resolves the profile owned by the authenticated user.
func (h *ProfileHandler) callerProfile(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return uuid.Nil, false
	}
	profile, err := h.profileService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "you do not have a profile yet"})
		return uuid.Nil, false
	}
	return profile.ID, true
}

func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileService.List(c.Request.Context(), c.Query("username"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *ProfileHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		serviceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	profile, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), id, userID, &req)
	if err != nil {
		serviceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), id, userID); err != nil {
		serviceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Profile deleted."})
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "profile")
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read avatar file"})
		return
	}

	key := service.AvatarKey(profile.Username, header.Filename)
	url, err := h.images.Upload(c.Request.Context(), data, key, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store avatar"})
		return
	}

	if err := h.profileService.UpdateAvatar(c.Request.Context(), id, userID, url); err != nil {
		serviceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

func (h *ProfileHandler) Follow(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, ok := h.callerProfile(c)
	if !ok {
		return
	}

	detail, err := h.profileService.Follow(c.Request.Context(), callerID, targetID)
	if err != nil {
		serviceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": detail})
}

func (h *ProfileHandler) Unfollow(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, ok := h.callerProfile(c)
	if !ok {
		return
	}

	detail, err := h.profileService.Unfollow(c.Request.Context(), callerID, targetID)
	if err != nil {
		serviceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": detail})
}

func (h *ProfileHandler) Followers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	usernames, err := h.profileService.Followers(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"followers": usernames})
}

func (h *ProfileHandler) Following(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	usernames, err := h.profileService.Following(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": usernames})
}

func (h *ProfileHandler) Posts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	posts, err := h.profileService.Posts(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *ProfileHandler) FollowingPosts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	posts, err := h.profileService.FollowingPosts(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *ProfileHandler) LikedPosts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	posts, err := h.profileService.LikedPosts(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
