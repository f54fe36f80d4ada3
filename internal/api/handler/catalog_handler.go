package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labcel/storefront/internal/core/ports"
)

// CatalogHandler serves phone brands, phone models and products.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListBrands handles GET /phone-brands.
//
// @Summary      List phone brands
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.PhoneBrand
// @Router       /phone-brands [get]
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.service.ListBrands(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brands)
}

// CreateBrand handles POST /phone-brands.
//
// @Summary      Create a phone brand
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createBrandRequest  true  "Brand"
// @Success      200   {object}  domain.PhoneBrand
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /phone-brands [post]
func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	var req createBrandRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	brand, err := h.service.CreateBrand(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brand)
}

// ListModels handles GET /phone-models?brand_id=.
//
// @Summary      List phone models
// @Tags         catalog
// @Produce      json
// @Param        brand_id  query    string  false  "Filter by brand"
// @Success      200       {array}  domain.PhoneModel
// @Router       /phone-models [get]
func (h *CatalogHandler) ListModels(c echo.Context) error {
	models, err := h.service.ListModels(c.Request().Context(), c.QueryParam("brand_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models)
}

// CreateModel handles POST /phone-models.
//
// @Summary      Create a phone model
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createModelRequest  true  "Model"
// @Success      200   {object}  domain.PhoneModel
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /phone-models [post]
func (h *CatalogHandler) CreateModel(c echo.Context) error {
	var req createModelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	model, err := h.service.CreateModel(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model)
}

// ListProducts handles GET /products?category=&active_only=.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        category     query    string  false  "Filter by category"
// @Param        active_only  query    bool    false  "Only active products (default true)"
// @Success      200          {array}  domain.Product
// @Failure      400          {object}  errorResponse
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter := ports.ProductFilter{ActiveOnly: true}
	if err := echo.QueryParamsBinder(c).
		String("category", &filter.Category).
		Bool("active_only", &filter.ActiveOnly).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Parámetros de consulta inválidos")
	}

	products, err := h.service.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:product_id.
//
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        product_id  path      string  true  "Product id"
// @Success      200         {object}  domain.Product
// @Failure      404         {object}  errorResponse
// @Router       /products/{product_id} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("product_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products.
//
// @Summary      Create a product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createProductRequest  true  "Product"
// @Success      200   {object}  domain.Product
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /products [post]
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	product, err := h.service.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		BaseImageURL:   req.BaseImageURL,
		IsCustomizable: req.IsCustomizable,
		Stock:          req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /products/:product_id.
//
// @Summary      Update a product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        product_id  path      string                true  "Product id"
// @Param        body        body      updateProductRequest  true  "Fields to update"
// @Success      200         {object}  domain.Product
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /products/{product_id} [put]
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("product_id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:product_id.
//
// @Summary      Delete a product
// @Tags         catalog
// @Produce      json
// @Security     SessionCookie
// @Param        product_id  path      string  true  "Product id"
// @Success      200         {object}  messageResponse
// @Failure      404         {object}  errorResponse
// @Router       /products/{product_id} [delete]
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("product_id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Producto eliminado"})
}

// Seed handles POST /seed.
//
// @Summary      Seed demo catalog data
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /seed [post]
func (h *CatalogHandler) Seed(c echo.Context) error {
	if err := h.service.Seed(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Datos iniciales creados correctamente"})
}
