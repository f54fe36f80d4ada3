package ports

import (
	"context"

	"github.com/labcel/storefront/internal/core/domain"
)

type ImageRepository interface {
	Insert(ctx context.Context, img *domain.UploadedImage) error
	FindByID(ctx context.Context, imageID string) (*domain.UploadedImage, error)
}
