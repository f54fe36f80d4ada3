package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

type stubCatalogService struct {
	filter  *ports.ProductFilter
	brand   *domain.PhoneBrand
	model   *domain.PhoneModel
	created *ports.CreateProductInput
	update  *domain.ProductUpdate
	deleted string
	seeded  int
	err     error
}

func (s *stubCatalogService) ListBrands(ctx context.Context) ([]*domain.PhoneBrand, error) {
	return []*domain.PhoneBrand{}, s.err
}

func (s *stubCatalogService) CreateBrand(ctx context.Context, b domain.PhoneBrand) (*domain.PhoneBrand, error) {
	s.brand = &b
	return &b, s.err
}

func (s *stubCatalogService) ListModels(ctx context.Context, brandID string) ([]*domain.PhoneModel, error) {
	return []*domain.PhoneModel{{ModelID: "m1", BrandID: brandID}}, s.err
}

func (s *stubCatalogService) CreateModel(ctx context.Context, m domain.PhoneModel) (*domain.PhoneModel, error) {
	s.model = &m
	return &m, s.err
}

func (s *stubCatalogService) ListProducts(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	s.filter = &filter
	return []*domain.Product{}, s.err
}

func (s *stubCatalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Product{ProductID: productID}, nil
}

func (s *stubCatalogService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	s.created = &input
	return &domain.Product{ProductID: "prod_new", Name: input.Name}, s.err
}

func (s *stubCatalogService) UpdateProduct(ctx context.Context, productID string, upd domain.ProductUpdate) (*domain.Product, error) {
	s.update = &upd
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Product{ProductID: productID}, nil
}

func (s *stubCatalogService) DeleteProduct(ctx context.Context, productID string) error {
	s.deleted = productID
	return s.err
}

func (s *stubCatalogService) Seed(ctx context.Context) error {
	s.seeded++
	return s.err
}

func TestCatalogHandler_ListProducts_Filters(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantActive bool
		wantCat    string
	}{
		{"defaults to active only", "", true, ""},
		{"category", "?category=funda", true, "funda"},
		{"include inactive", "?active_only=false", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubCatalogService{}
			h := NewCatalogHandler(svc)

			c, _ := newContext(http.MethodGet, "/api/products"+tt.query, "")
			if err := h.ListProducts(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if svc.filter.ActiveOnly != tt.wantActive || svc.filter.Category != tt.wantCat {
				t.Fatalf("unexpected filter: %+v", svc.filter)
			}
		})
	}
}

func TestCatalogHandler_ListProducts_BadQuery(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{})

	c, _ := newContext(http.MethodGet, "/api/products?active_only=maybe", "")
	if err := h.ListProducts(c); err == nil {
		t.Fatal("expected error for a non-boolean active_only")
	}
}

func TestCatalogHandler_CreateBrand_DefaultsActive(t *testing.T) {
	svc := &stubCatalogService{}
	h := NewCatalogHandler(svc)

	c, _ := newContext(http.MethodPost, "/api/phone-brands", `{"name":"Nothing"}`)
	if err := h.CreateBrand(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.brand.Name != "Nothing" || !svc.brand.IsActive {
		t.Fatalf("unexpected brand: %+v", svc.brand)
	}
}

func TestCatalogHandler_CreateModel_RequiresBrand(t *testing.T) {
	svc := &stubCatalogService{}
	h := NewCatalogHandler(svc)

	c, _ := newContext(http.MethodPost, "/api/phone-models", `{"name":"Phone 2"}`)
	var ve *ValidationError
	if err := h.CreateModel(c); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if svc.model != nil {
		t.Fatal("service must not be called")
	}
}

func TestCatalogHandler_ListModels_ByBrand(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{})

	c, rec := newContext(http.MethodGet, "/api/phone-models?brand_id=brand_apple", "")
	if err := h.ListModels(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCatalogHandler_CreateProduct_PassesOptionalFields(t *testing.T) {
	svc := &stubCatalogService{}
	h := NewCatalogHandler(svc)

	c, _ := newContext(http.MethodPost, "/api/products",
		`{"name":"Funda MagSafe","description":"Con imán","price":399,"is_customizable":false}`)
	if err := h.CreateProduct(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	in := svc.created
	if in.IsCustomizable == nil || *in.IsCustomizable {
		t.Fatalf("expected is_customizable=false, got %v", in.IsCustomizable)
	}
	if in.Stock != nil {
		t.Fatalf("stock must stay unset so the service default applies, got %d", *in.Stock)
	}
}

func TestCatalogHandler_UpdateProduct_PartialFields(t *testing.T) {
	svc := &stubCatalogService{}
	h := NewCatalogHandler(svc)

	c, _ := newContext(http.MethodPut, "/api/products/prod_1", `{"price":299.5,"is_active":false}`)
	c.SetParamNames("product_id")
	c.SetParamValues("prod_1")

	if err := h.UpdateProduct(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	u := svc.update
	if u.Price == nil || *u.Price != 299.5 || u.IsActive == nil || *u.IsActive {
		t.Fatalf("unexpected update: %+v", u)
	}
	if u.Name != nil || u.Stock != nil {
		t.Fatal("absent fields must stay nil")
	}
}

func TestCatalogHandler_DeleteProduct(t *testing.T) {
	svc := &stubCatalogService{}
	h := NewCatalogHandler(svc)

	c, rec := newContext(http.MethodDelete, "/api/products/prod_1", "")
	c.SetParamNames("product_id")
	c.SetParamValues("prod_1")

	if err := h.DeleteProduct(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.deleted != "prod_1" {
		t.Fatalf("expected prod_1 deleted, got %q", svc.deleted)
	}
	if resp := decodeBody(t, rec); resp["message"] != "Producto eliminado" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCatalogHandler_DeleteProduct_NotFound(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{err: domain.ErrProductNotFound})

	c, _ := newContext(http.MethodDelete, "/api/products/nope", "")
	if err := h.DeleteProduct(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCatalogHandler_Seed(t *testing.T) {
	svc := &stubCatalogService{}
	h := NewCatalogHandler(svc)

	c, rec := newContext(http.MethodPost, "/api/seed", "")
	if err := h.Seed(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.seeded != 1 {
		t.Fatalf("expected one seed call, got %d", svc.seeded)
	}
	if resp := decodeBody(t, rec); resp["message"] != "Datos iniciales creados correctamente" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
