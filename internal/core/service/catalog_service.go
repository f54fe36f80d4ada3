package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

const (
	defaultProductStock = 100
)

type CatalogService struct {
	taxonomy ports.TaxonomyRepository
	products ports.ProductRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewCatalogService(taxonomy ports.TaxonomyRepository, products ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		taxonomy: taxonomy,
		products: products,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]*domain.PhoneBrand, error) {
	return s.taxonomy.ListBrands(ctx)
}

// CreateBrand assigns an id when the caller did not provide one.
func (s *CatalogService) CreateBrand(ctx context.Context, b domain.PhoneBrand) (*domain.PhoneBrand, error) {
	if b.BrandID == "" {
		b.BrandID = domain.NewBrandID()
	}
	if err := s.taxonomy.CreateBrand(ctx, &b); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	return &b, nil
}

func (s *CatalogService) ListModels(ctx context.Context, brandID string) ([]*domain.PhoneModel, error) {
	return s.taxonomy.ListModels(ctx, brandID)
}

func (s *CatalogService) CreateModel(ctx context.Context, m domain.PhoneModel) (*domain.PhoneModel, error) {
	if m.ModelID == "" {
		m.ModelID = domain.NewModelID()
	}
	if err := s.taxonomy.CreateModel(ctx, &m); err != nil {
		return nil, fmt.Errorf("create model: %w", err)
	}
	return &m, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	return s.products.List(ctx, filter)
}

func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.products.FindByID(ctx, productID)
}

// CreateProduct applies catalog defaults: category funda, customizable,
// active and a stock of 100.
func (s *CatalogService) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	now := s.now()
	p := &domain.Product{
		ProductID:      domain.NewProductID(),
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Category:       in.Category,
		BaseImageURL:   in.BaseImageURL,
		IsCustomizable: true,
		IsActive:       true,
		Stock:          defaultProductStock,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if p.Category == "" {
		p.Category = domain.DefaultProductCategory
	}
	if in.IsCustomizable != nil {
		p.IsCustomizable = *in.IsCustomizable
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}

	if err := s.products.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.log.Info().Str("product_id", p.ProductID).Msg("product created")
	return p, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, productID string, upd domain.ProductUpdate) (*domain.Product, error) {
	if upd.Empty() {
		return nil, domain.ErrEmptyUpdate
	}
	p, err := s.products.Update(ctx, productID, upd, s.now())
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.products.Delete(ctx, productID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.log.Info().Str("product_id", productID).Msg("product deleted")
	return nil
}

// Seed upserts the demo taxonomy and the two base case products.
func (s *CatalogService) Seed(ctx context.Context) error {
	for i := range seedBrands {
		if err := s.taxonomy.UpsertBrand(ctx, &seedBrands[i]); err != nil {
			return fmt.Errorf("seed brand %s: %w", seedBrands[i].BrandID, err)
		}
	}
	for i := range seedModels {
		if err := s.taxonomy.UpsertModel(ctx, &seedModels[i]); err != nil {
			return fmt.Errorf("seed model %s: %w", seedModels[i].ModelID, err)
		}
	}
	now := s.now()
	for _, p := range seedProducts {
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := s.products.Upsert(ctx, &p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.ProductID, err)
		}
	}
	s.log.Info().
		Int("brands", len(seedBrands)).
		Int("models", len(seedModels)).
		Int("products", len(seedProducts)).
		Msg("catalog seeded")
	return nil
}

var seedBrands = []domain.PhoneBrand{
	{BrandID: "brand_apple", Name: "Apple", IsActive: true},
	{BrandID: "brand_samsung", Name: "Samsung", IsActive: true},
	{BrandID: "brand_xiaomi", Name: "Xiaomi", IsActive: true},
	{BrandID: "brand_huawei", Name: "Huawei", IsActive: true},
	{BrandID: "brand_motorola", Name: "Motorola", IsActive: true},
}

var seedModels = []domain.PhoneModel{
	{ModelID: "model_iphone15", BrandID: "brand_apple", Name: "iPhone 15", IsActive: true},
	{ModelID: "model_iphone15pro", BrandID: "brand_apple", Name: "iPhone 15 Pro", IsActive: true},
	{ModelID: "model_iphone14", BrandID: "brand_apple", Name: "iPhone 14", IsActive: true},
	{ModelID: "model_iphone13", BrandID: "brand_apple", Name: "iPhone 13", IsActive: true},
	{ModelID: "model_s24", BrandID: "brand_samsung", Name: "Galaxy S24", IsActive: true},
	{ModelID: "model_s24ultra", BrandID: "brand_samsung", Name: "Galaxy S24 Ultra", IsActive: true},
	{ModelID: "model_s23", BrandID: "brand_samsung", Name: "Galaxy S23", IsActive: true},
	{ModelID: "model_a54", BrandID: "brand_samsung", Name: "Galaxy A54", IsActive: true},
	{ModelID: "model_redmi13", BrandID: "brand_xiaomi", Name: "Redmi Note 13", IsActive: true},
	{ModelID: "model_poco", BrandID: "brand_xiaomi", Name: "Poco X6", IsActive: true},
	{ModelID: "model_p60", BrandID: "brand_huawei", Name: "P60 Pro", IsActive: true},
	{ModelID: "model_edge40", BrandID: "brand_motorola", Name: "Edge 40", IsActive: true},
}

var seedProducts = []domain.Product{
	{
		ProductID:      "prod_funda_normal",
		Name:           "Funda Personalizada Una Pieza",
		Description:    "Funda personalizada de una pieza para uso normal. Diseño elegante con tu imagen favorita, protección diaria para tu smartphone.",
		Price:          180.00,
		Category:       domain.DefaultProductCategory,
		BaseImageURL:   "https://images.unsplash.com/photo-1601784551446-20c9e07cdbdb?crop=entropy&cs=srgb&fm=jpg&q=85&w=400",
		IsCustomizable: true,
		IsActive:       true,
		Stock:          100,
	},
	{
		ProductID:      "prod_funda_rudo",
		Name:           "Funda Personalizada Dos Piezas - Uso Rudo",
		Description:    "Funda personalizada de dos piezas para uso rudo. Máxima protección con diseño personalizado, ideal para trabajo pesado y aventuras.",
		Price:          280.00,
		Category:       domain.DefaultProductCategory,
		BaseImageURL:   "https://images.unsplash.com/photo-1609081219090-a6d81d3085bf?crop=entropy&cs=srgb&fm=jpg&q=85&w=400",
		IsCustomizable: true,
		IsActive:       true,
		Stock:          50,
	},
}
