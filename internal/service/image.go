package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"social-media-backend/config"
	"social-media-backend/internal/utils"
	"social-media-backend/pkg/logger"
)

// ImageService stores uploaded avatars and post images in S3.
type ImageService struct {
	s3Config *config.S3Config
}

func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// AvatarKey builds the object key for a profile avatar:
// uploads/avatars/<slug(username)>--<uuid><ext>.
func AvatarKey(username, filename string) string {
	return uploadKey("uploads/avatars", username, filename)
}

// PostImageKey builds the object key for a post image:
// uploads/posts/<slug(name)>--<uuid><ext>.
func PostImageKey(name, filename string) string {
	return uploadKey("uploads/posts", name, filename)
}

func uploadKey(prefix, name, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s--%s%s", prefix, utils.Slug(name), uuid.New(), ext)
}

// DisabledImageService stands in when object storage is not configured;
// uploads fail with a clear error instead of a nil dereference.
type DisabledImageService struct{}

func (DisabledImageService) Upload(ctx context.Context, data []byte, key, contentType string) (string, error) {
	return "", fmt.Errorf("object storage is not configured")
}

// Upload writes the image to S3 and returns its public URL.
func (s *ImageService) Upload(ctx context.Context, data []byte, key, contentType string) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := s.s3Config.ObjectURL(key)
	logger.Info("uploaded image", map[string]interface{}{"key": key})
	return url, nil
}
