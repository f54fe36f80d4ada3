package handler

import "github.com/labcel/storefront/internal/core/domain"

type createBrandRequest struct {
	BrandID  string `json:"brand_id"`
	Name     string `json:"name"     validate:"required"`
	LogoURL  string `json:"logo_url"`
	IsActive *bool  `json:"is_active"`
}

func (r createBrandRequest) toDomain() domain.PhoneBrand {
	return domain.PhoneBrand{
		BrandID:  r.BrandID,
		Name:     r.Name,
		LogoURL:  r.LogoURL,
		IsActive: boolOr(r.IsActive, true),
	}
}

type createModelRequest struct {
	ModelID         string `json:"model_id"`
	BrandID         string `json:"brand_id"          validate:"required"`
	Name            string `json:"name"              validate:"required"`
	ImageURL        string `json:"image_url"`
	CaseTemplateURL string `json:"case_template_url"`
	IsActive        *bool  `json:"is_active"`
}

func (r createModelRequest) toDomain() domain.PhoneModel {
	return domain.PhoneModel{
		ModelID:         r.ModelID,
		BrandID:         r.BrandID,
		Name:            r.Name,
		ImageURL:        r.ImageURL,
		CaseTemplateURL: r.CaseTemplateURL,
		IsActive:        boolOr(r.IsActive, true),
	}
}

type createProductRequest struct {
	Name           string  `json:"name"            validate:"required"`
	Description    string  `json:"description"     validate:"required"`
	Price          float64 `json:"price"           validate:"gte=0"`
	Category       string  `json:"category"`
	BaseImageURL   string  `json:"base_image_url"`
	IsCustomizable *bool   `json:"is_customizable"`
	Stock          *int    `json:"stock"           validate:"omitempty,gte=0"`
}

type updateProductRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price"           validate:"omitempty,gte=0"`
	Category       *string  `json:"category"`
	BaseImageURL   *string  `json:"base_image_url"`
	IsCustomizable *bool    `json:"is_customizable"`
	IsActive       *bool    `json:"is_active"`
	Stock          *int     `json:"stock"           validate:"omitempty,gte=0"`
}

func (r updateProductRequest) toDomain() domain.ProductUpdate {
	return domain.ProductUpdate{
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		Category:       r.Category,
		BaseImageURL:   r.BaseImageURL,
		IsCustomizable: r.IsCustomizable,
		IsActive:       r.IsActive,
		Stock:          r.Stock,
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
