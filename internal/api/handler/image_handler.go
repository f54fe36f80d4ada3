package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labcel/storefront/internal/api/metrics"
	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

// ImageHandler accepts customer design uploads.
type ImageHandler struct {
	service  ports.ImageService
	maxBytes int64
}

func NewImageHandler(service ports.ImageService, maxBytes int64) *ImageHandler {
	if maxBytes <= 0 {
		maxBytes = domain.MaxImageBytes
	}
	return &ImageHandler{service: service, maxBytes: maxBytes}
}

type imageResponse struct {
	ImageID string `json:"image_id"`
	URL     string `json:"url"`
}

// Upload handles POST /upload/image (multipart field "file").
//
// @Summary      Upload a design image
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file (max 5MB)"
// @Success      200   {object}  imageResponse
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /upload/image [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
			return domain.ErrImageTooLarge
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Falta el archivo")
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	// One byte past the limit is enough for the service to reject it.
	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	img, err := h.service.Upload(c.Request().Context(), fh.Filename, fh.Header.Get(echo.HeaderContentType), data)
	if err != nil {
		return err
	}
	metrics.ImagesUploadedBytes.Observe(float64(img.SizeBytes))

	return c.JSON(http.StatusOK, imageResponse{ImageID: img.ImageID, URL: img.DataURL()})
}

// Get handles GET /upload/image/:image_id.
//
// @Summary      Get an uploaded image
// @Tags         uploads
// @Produce      json
// @Param        image_id  path      string  true  "Image id"
// @Success      200       {object}  imageResponse
// @Failure      404       {object}  errorResponse
// @Router       /upload/image/{image_id} [get]
func (h *ImageHandler) Get(c echo.Context) error {
	img, err := h.service.Get(c.Request().Context(), c.Param("image_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, imageResponse{ImageID: img.ImageID, URL: img.DataURL()})
}
