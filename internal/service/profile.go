package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"social-media-backend/internal/models"
	"social-media-backend/internal/types"
)

// ProfileService handles profile CRUD and the follow graph.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Create binds a new profile to the calling user's account.
func (s *ProfileService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateProfileRequest) (*models.Profile, error) {
	var existing models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return nil, ErrProfileExists
	}
	if err := s.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	profile := models.Profile{
		UserID:      userID,
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Bio:         req.Bio,
		DateOfBirth: req.DateOfBirth,
		Location:    req.Location,
		Phone:       req.Phone,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns all profiles, optionally filtered by a case-insensitive
// username substring.
func (s *ProfileService) List(ctx context.Context, username string) ([]models.Profile, error) {
	var profiles []models.Profile
	query := s.db
	if username != "" {
		query = query.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(username)+"%")
	}
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByUserID resolves the caller's own profile from the authenticated user.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies a partial update. Only the owning user may update a profile.
func (s *ProfileService) Update(ctx context.Context, id, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.UserID != userID {
		return nil, ErrForbidden
	}

	if req.Username != nil && *req.Username != profile.Username {
		var existing models.Profile
		if err := s.db.Where("username = ?", *req.Username).First(&existing).Error; err == nil {
			return nil, ErrUsernameTaken
		}
		profile.Username = *req.Username
	}
	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.DateOfBirth != nil {
		profile.DateOfBirth = req.DateOfBirth
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}

	if err := s.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// Delete removes a profile and everything hanging off it: follow edges in
// both directions, likes, comments and authored posts.
func (s *ProfileService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if profile.UserID != userID {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("follower_id = ? OR following_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		var postIDs []uuid.UUID
		if err := tx.Model(&models.Post{}).Where("profile_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("profile_id = ?", id).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(profile).Error
	})
}

// UpdateAvatar stores the uploaded avatar's URL. Owner only.
func (s *ProfileService) UpdateAvatar(ctx context.Context, id, userID uuid.UUID, url string) error {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if profile.UserID != userID {
		return ErrForbidden
	}
	return s.db.Model(profile).Update("avatar_url", url).Error
}

// Follow creates the directed edge follower -> target. Following yourself or
// an already-followed profile is a no-op answered with a message, matching
// the idempotent toggle contract.
func (s *ProfileService) Follow(ctx context.Context, followerID, targetID uuid.UUID) (string, error) {
	target, err := s.Get(ctx, targetID)
	if err != nil {
		return "", err
	}

	if followerID == targetID {
		return "You cannot follow yourself.", nil
	}

	var edge models.Follow
	err = s.db.Where("follower_id = ? AND following_id = ?", followerID, targetID).First(&edge).Error
	if err == nil {
		return "You are already following this user.", nil
	}
	if err != gorm.ErrRecordNotFound {
		return "", err
	}

	edge = models.Follow{FollowerID: followerID, FollowingID: targetID}
	if err := s.db.Create(&edge).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("You are now following %s.", target.FullName()), nil
}

// Unfollow removes the edge if it exists.
func (s *ProfileService) Unfollow(ctx context.Context, followerID, targetID uuid.UUID) (string, error) {
	target, err := s.Get(ctx, targetID)
	if err != nil {
		return "", err
	}

	if followerID == targetID {
		return "You cannot unfollow yourself.", nil
	}

	var edge models.Follow
	err = s.db.Where("follower_id = ? AND following_id = ?", followerID, targetID).First(&edge).Error
	if err == gorm.ErrRecordNotFound {
		return "You are not following this user.", nil
	}
	if err != nil {
		return "", err
	}

	if err := s.db.Delete(&edge).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("You have unfollowed %s.", target.FullName()), nil
}

// Followers returns the usernames of profiles following id.
func (s *ProfileService) Followers(ctx context.Context, id uuid.UUID) ([]string, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	var usernames []string
	err := s.db.Model(&models.Profile{}).
		Joins("JOIN follows ON follows.follower_id = profiles.id").
		Where("follows.following_id = ?", id).
		Pluck("profiles.username", &usernames).Error
	if err != nil {
		return nil, err
	}
	return usernames, nil
}

// Following returns the usernames of profiles id follows.
func (s *ProfileService) Following(ctx context.Context, id uuid.UUID) ([]string, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	var usernames []string
	err := s.db.Model(&models.Profile{}).
		Joins("JOIN follows ON follows.following_id = profiles.id").
		Where("follows.follower_id = ?", id).
		Pluck("profiles.username", &usernames).Error
	if err != nil {
		return nil, err
	}
	return usernames, nil
}

// Posts returns the posts authored by id, newest first.
func (s *ProfileService) Posts(ctx context.Context, id uuid.UUID) ([]models.Post, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	var posts []models.Post
	if err := s.db.Where("profile_id = ?", id).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FollowingPosts returns the posts authored by every profile id follows.
func (s *ProfileService) FollowingPosts(ctx context.Context, id uuid.UUID) ([]models.Post, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	sub := s.db.Model(&models.Follow{}).Select("following_id").Where("follower_id = ?", id)
	var posts []models.Post
	if err := s.db.Where("profile_id IN (?)", sub).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// LikedPosts returns the posts id has liked.
func (s *ProfileService) LikedPosts(ctx context.Context, id uuid.UUID) ([]models.Post, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	sub := s.db.Model(&models.Like{}).Select("post_id").Where("profile_id = ?", id)
	var posts []models.Post
	if err := s.db.Where("id IN (?)", sub).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
