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

type PostHandler struct {
	postService    service.IPostService
	profileService service.IProfileService
	authService    service.IAuthService
	images         service.ImageUploader
	createLimiter  *middleware.RateLimiter
}

func NewPostHandler(postService service.IPostService, profileService service.IProfileService, authService service.IAuthService, images service.ImageUploader, createLimiter *middleware.RateLimiter) *PostHandler {
	return &PostHandler{
		postService:    postService,
		profileService: profileService,
		authService:    authService,
		images:         images,
		createLimiter:  createLimiter,
	}
}

func (h *PostHandler) RegisterRoutes(router *gin.RouterGroup) {
	posts := router.Group("/posts")
	posts.Use(middleware.AuthMiddleware(h.authService))
	{
		posts.GET("", h.List)
		if h.createLimiter != nil {
			posts.POST("", h.createLimiter.Middleware(), h.Create)
		} else {
			posts.POST("", h.Create)
		}
		posts.GET("/:id", h.Get)
		posts.PUT("/:id", h.Update)
		posts.DELETE("/:id", h.Delete)
		posts.POST("/:id/image", h.UploadImage)
		posts.POST("/:id/like", h.Like)
		posts.POST("/:id/unlike", h.Unlike)
		posts.GET("/:id/comments", h.Comments)
		posts.POST("/:id/add_comment", h.AddComment)
		posts.PUT("/:id/update_comment/:comment_id", h.UpdateComment)
		posts.DELETE("/:id/delete_comment/:comment_id", h.DeleteComment)
	}
}

// callerProfile resolves the profile owned by the authenticated user.
func (h *PostHandler) callerProfile(c *gin.Context) (uuid.UUID, bool) {
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

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *PostHandler) Create(c *gin.Context) {
	callerID, ok := h.callerProfile(c)
	if !ok {
		return
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		serviceError(c, err, "post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, ok := h.callerProfile(c)
	if !ok {
		return
	}

	var req types.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Update(c.Request.Context(), id, callerID, &req)
	if err != nil {
		serviceError(c, err, "post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, ok := h.callerProfile(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id, callerID); err != nil {
		serviceError(c, err, "post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Post deleted."})
}

func (h *PostHandler) UploadImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, ok := h.callerProfile(c)
	if !ok {
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "post")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}

	key := service.PostImageKey(post.Name, header.Filename)
	url, err := h.images.Upload(c.Request.Context(), data, key, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	if err := h.postService.SetImage(c.Request.Context(), id, callerID, url); err != nil {
		serviceError(c, err, "post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

func (h *PostHandler) Like(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, ok := h.callerProfile(c)
	if !ok {
		return
	}

	detail, err := h.postService.Like(c.Request.Context(), callerID, id)
	if err != nil {
		serviceError(c, err, "post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": detail})
}

func (h *PostHandler) Unlike(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, ok := h.callerProfile(c)
	if !ok {
		return
	}

	detail, err := h.postService.Unlike(c.Request.Context(), callerID, id)
	if err != nil {
		serviceError(c, err, "post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": detail})
}

func (h *PostHandler) Comments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	comments, err := h.postService.Comments(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *PostHandler) AddComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, ok := h.callerProfile(c)
	if !ok {
		return
	}

	var req types.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.postService.AddComment(c.Request.Context(), id, callerID, req.Text)
	if err != nil {
		serviceError(c, err, "post")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *PostHandler) UpdateComment(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	callerID, ok := h.callerProfile(c)
	if !ok {
		return
	}

	var req types.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.postService.UpdateComment(c.Request.Context(), commentID, callerID, req.Text)
	if err != nil {
		serviceError(c, err, "comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	callerID, ok := h.callerProfile(c)
	if !ok {
		return
	}

	if err := h.postService.DeleteComment(c.Request.Context(), commentID, callerID); err != nil {
		serviceError(c, err, "comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Comment deleted."})
}
