package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

// ImageService stores uploaded design images as base64 documents.
type ImageService struct {
	repo     ports.ImageRepository
	maxBytes int
	log      zerolog.Logger
}

// NewImageService caps uploads at maxBytes (domain.MaxImageBytes when <= 0).
func NewImageService(repo ports.ImageRepository, maxBytes int, log zerolog.Logger) *ImageService {
	if maxBytes <= 0 {
		maxBytes = domain.MaxImageBytes
	}
	return &ImageService{repo: repo, maxBytes: maxBytes, log: log}
}

func (s *ImageService) Upload(ctx context.Context, filename, contentType string, data []byte) (*domain.UploadedImage, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domain.ErrNotAnImage
	}
	if len(data) > s.maxBytes {
		return nil, domain.ErrImageTooLarge
	}

	img := &domain.UploadedImage{
		ImageID:     domain.NewImageID(),
		Filename:    filename,
		ContentType: contentType,
		Data:        base64.StdEncoding.EncodeToString(data),
		SizeBytes:   len(data),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, img); err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	s.log.Info().Str("image_id", img.ImageID).Int("bytes", img.SizeBytes).Msg("image uploaded")
	return img, nil
}

func (s *ImageService) Get(ctx context.Context, imageID string) (*domain.UploadedImage, error) {
	return s.repo.FindByID(ctx, imageID)
}
