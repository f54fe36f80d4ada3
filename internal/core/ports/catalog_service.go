package ports

import (
	"context"

	"github.com/labcel/storefront/internal/core/domain"
)

type CreateProductInput struct {
	Name           string
	Description    string
	Price          float64
	Category       string
	BaseImageURL   string
	IsCustomizable *bool
	Stock          *int
}

// CatalogService covers the phone taxonomy and the product catalog.
type CatalogService interface {
	ListBrands(ctx context.Context) ([]*domain.PhoneBrand, error)
	CreateBrand(ctx context.Context, b domain.PhoneBrand) (*domain.PhoneBrand, error)
	ListModels(ctx context.Context, brandID string) ([]*domain.PhoneModel, error)
	CreateModel(ctx context.Context, m domain.PhoneModel) (*domain.PhoneModel, error)

	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, upd domain.ProductUpdate) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error

	// Seed upserts the demo taxonomy and products; safe to run repeatedly.
	Seed(ctx context.Context) error
}
