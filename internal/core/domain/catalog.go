package domain

import "time"

const DefaultProductCategory = "funda"

type PhoneBrand struct {
	BrandID  string `json:"brand_id" bson:"brand_id"`
	Name     string `json:"name" bson:"name"`
	LogoURL  string `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	IsActive bool   `json:"is_active" bson:"is_active"`
}

type PhoneModel struct {
	ModelID         string `json:"model_id" bson:"model_id"`
	BrandID         string `json:"brand_id" bson:"brand_id"`
	Name            string `json:"name" bson:"name"`
	ImageURL        string `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CaseTemplateURL string `json:"case_template_url,omitempty" bson:"case_template_url,omitempty"`
	IsActive        bool   `json:"is_active" bson:"is_active"`
}

// Product is a catalog entry. Orders snapshot its name and price, so edits here
// never change historical orders.
type Product struct {
	ProductID      string    `json:"product_id" bson:"product_id"`
	Name           string    `json:"name" bson:"name"`
	Description    string    `json:"description" bson:"description"`
	Price          float64   `json:"price" bson:"price"`
	Category       string    `json:"category" bson:"category"`
	BaseImageURL   string    `json:"base_image_url,omitempty" bson:"base_image_url,omitempty"`
	IsCustomizable bool      `json:"is_customizable" bson:"is_customizable"`
	IsActive       bool      `json:"is_active" bson:"is_active"`
	Stock          int       `json:"stock" bson:"stock"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// ProductUpdate is a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name           *string
	Description    *string
	Price          *float64
	Category       *string
	BaseImageURL   *string
	IsCustomizable *bool
	IsActive       *bool
	Stock          *int
}

func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Category == nil &&
		u.BaseImageURL == nil && u.IsCustomizable == nil && u.IsActive == nil && u.Stock == nil
}
