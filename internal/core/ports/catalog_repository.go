package ports

import (
	"context"
	"time"

	"github.com/labcel/storefront/internal/core/domain"
)

// TaxonomyRepository stores phone brands and models.
type TaxonomyRepository interface {
	ListBrands(ctx context.Context) ([]*domain.PhoneBrand, error)
	CreateBrand(ctx context.Context, b *domain.PhoneBrand) error
	UpsertBrand(ctx context.Context, b *domain.PhoneBrand) error
	// ListModels filters by brand when brandID is non-empty.
	ListModels(ctx context.Context, brandID string) ([]*domain.PhoneModel, error)
	CreateModel(ctx context.Context, m *domain.PhoneModel) error
	UpsertModel(ctx context.Context, m *domain.PhoneModel) error
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	Category   string // empty = any
	ActiveOnly bool
}

// ProductRepository stores catalog products.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	FindByID(ctx context.Context, productID string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, productID string, upd domain.ProductUpdate, now time.Time) (*domain.Product, error)
	Delete(ctx context.Context, productID string) error
	Upsert(ctx context.Context, p *domain.Product) error
}
