package service

import (
	"context"

	"github.com/google/uuid"

	"social-media-backend/internal/models"
	"social-media-backend/internal/types"
)

// IAuthService is the auth surface the handlers and middleware depend on.
type IAuthService interface {
	Register(name, email, password string) (string, error)
	Login(email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService is the profile surface the handlers depend on.
type IProfileService interface {
	Create(ctx context.Context, userID uuid.UUID, req *types.CreateProfileRequest) (*models.Profile, error)
	List(ctx context.Context, username string) ([]models.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, id, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.Profile, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	UpdateAvatar(ctx context.Context, id, userID uuid.UUID, url string) error
	Follow(ctx context.Context, followerID, targetID uuid.UUID) (string, error)
	Unfollow(ctx context.Context, followerID, targetID uuid.UUID) (string, error)
	Followers(ctx context.Context, id uuid.UUID) ([]string, error)
	Following(ctx context.Context, id uuid.UUID) ([]string, error)
	Posts(ctx context.Context, id uuid.UUID) ([]models.Post, error)
	FollowingPosts(ctx context.Context, id uuid.UUID) ([]models.Post, error)
	LikedPosts(ctx context.Context, id uuid.UUID) ([]models.Post, error)
}

// IPostService is the post surface the handlers depend on.
type IPostService interface {
	Create(ctx context.Context, profileID uuid.UUID, req *types.CreatePostRequest) (*models.Post, error)
	List(ctx context.Context, name string) ([]models.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Post, error)
	Update(ctx context.Context, id, profileID uuid.UUID, req *types.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, id, profileID uuid.UUID) error
	SetImage(ctx context.Context, id, profileID uuid.UUID, url string) error
	Like(ctx context.Context, profileID, postID uuid.UUID) (string, error)
	Unlike(ctx context.Context, profileID, postID uuid.UUID) (string, error)
	Comments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)
	AddComment(ctx context.Context, postID, profileID uuid.UUID, text string) (*models.Comment, error)
	UpdateComment(ctx context.Context, commentID, profileID uuid.UUID, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID, profileID uuid.UUID) error
}

// ImageUploader is implemented by ImageService; handlers depend on it so
// tests can substitute a stub.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, key, contentType string) (string, error)
}

var (
	_ IAuthService    = (*AuthService)(nil)
	_ IProfileService = (*ProfileService)(nil)
	_ IPostService    = (*PostService)(nil)
	_ ImageUploader   = (*ImageService)(nil)
)
