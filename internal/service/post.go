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

// PostService handles posts, likes and comments.
type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

func (s *PostService) Create(ctx context.Context, profileID uuid.UUID, req *types.CreatePostRequest) (*models.Post, error) {
	var existing models.Post
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, ErrPostNameTaken
	}

	post := models.Post{
		ProfileID: profileID,
		Name:      req.Name,
		Content:   req.Content,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns all posts, optionally filtered by a case-insensitive name
// substring.
func (s *PostService) List(ctx context.Context, name string) ([]models.Post, error) {
	var posts []models.Post
	query := s.db
	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) Update(ctx context.Context, id, profileID uuid.UUID, req *types.UpdatePostRequest) (*models.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.ProfileID != profileID {
		return nil, ErrForbidden
	}

	if req.Name != nil && *req.Name != post.Name {
		var existing models.Post
		if err := s.db.Where("name = ?", *req.Name).First(&existing).Error; err == nil {
			return nil, ErrPostNameTaken
		}
		post.Name = *req.Name
	}
	if req.Content != nil {
		post.Content = *req.Content
	}

	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post along with its likes and comments. Owner only.
func (s *PostService) Delete(ctx context.Context, id, profileID uuid.UUID) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.ProfileID != profileID {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
}

// SetImage stores the uploaded post image's URL. Owner only.
func (s *PostService) SetImage(ctx context.Context, id, profileID uuid.UUID, url string) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.ProfileID != profileID {
		return ErrForbidden
	}
	return s.db.Model(post).Update("image_url", url).Error
}

// Like records profileID's like on a post. Liking twice is a no-op answered
// with a message; at most one row exists per (profile, post).
func (s *PostService) Like(ctx context.Context, profileID, postID uuid.UUID) (string, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return "", err
	}

	var like models.Like
	err = s.db.Where("profile_id = ? AND post_id = ?", profileID, postID).First(&like).Error
	if err == nil {
		return "You have already liked this post.", nil
	}
	if err != gorm.ErrRecordNotFound {
		return "", err
	}

	like = models.Like{ProfileID: profileID, PostID: postID}
	if err := s.db.Create(&like).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("You have liked %s.", post.Name), nil
}

// Unlike removes the like if it exists.
func (s *PostService) Unlike(ctx context.Context, profileID, postID uuid.UUID) (string, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return "", err
	}

	var like models.Like
	err = s.db.Where("profile_id = ? AND post_id = ?", profileID, postID).First(&like).Error
	if err == gorm.ErrRecordNotFound {
		return "You have not liked this post.", nil
	}
	if err != nil {
		return "", err
	}

	if err := s.db.Delete(&like).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("You have unliked %s.", post.Name), nil
}

// Comments returns a post's comments, oldest first.
func (s *PostService) Comments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}
	var comments []models.Comment
	if err := s.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *PostService) AddComment(ctx context.Context, postID, profileID uuid.UUID, text string) (*models.Comment, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		PostID:    postID,
		ProfileID: profileID,
		Text:      text,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment mutates a comment by its own id. Author only.
func (s *PostService) UpdateComment(ctx context.Context, commentID, profileID uuid.UUID, text string) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", commentID).Error; err != nil {
		return nil, err
	}
	if comment.ProfileID != profileID {
		return nil, ErrForbidden
	}

	comment.Text = text
	if err := s.db.Save(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment by its own id. Author only.
func (s *PostService) DeleteComment(ctx context.Context, commentID, profileID uuid.UUID) error {
	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", commentID).Error; err != nil {
		return err
	}
	if comment.ProfileID != profileID {
		return ErrForbidden
	}
	return s.db.Delete(&comment).Error
}
