package ports

import (
	"context"

	"github.com/labcel/storefront/internal/core/domain"
)

type ImageService interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (*domain.UploadedImage, error)
	Get(ctx context.Context, imageID string) (*domain.UploadedImage, error)
}

type StatsService interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}
