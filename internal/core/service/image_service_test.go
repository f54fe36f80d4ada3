package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/labcel/storefront/internal/core/domain"
)

type stubImageRepo struct {
	byID map[string]domain.UploadedImage
}

func (r *stubImageRepo) Insert(_ context.Context, img *domain.UploadedImage) error {
	r.byID[img.ImageID] = *img
	return nil
}

func (r *stubImageRepo) FindByID(_ context.Context, id string) (*domain.UploadedImage, error) {
	img, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrImageNotFound
	}
	return &img, nil
}

func newTestImageService() (*ImageService, *stubImageRepo) {
	repo := &stubImageRepo{byID: map[string]domain.UploadedImage{}}
	return NewImageService(repo, 0, discardLogger), repo
}

func TestImageService_Upload_RoundTrip(t *testing.T) {
	svc, _ := newTestImageService()
	data := bytes.Repeat([]byte{0xAB}, 1<<20)

	img, err := svc.Upload(context.Background(), "design.png", "image/png", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.SizeBytes != len(data) {
		t.Errorf("expected size %d, got %d", len(data), img.SizeBytes)
	}

	got, err := svc.Get(context.Background(), img.ImageID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(got.Data)
	if err != nil {
		t.Fatalf("stored data is not base64: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Error("decoded bytes differ from upload")
	}
	want := "data:image/png;base64," + got.Data
	if got.DataURL() != want {
		t.Errorf("unexpected data url prefix")
	}
}

func TestImageService_Upload_TooLarge(t *testing.T) {
	svc, repo := newTestImageService()
	data := make([]byte, 6<<20)

	if _, err := svc.Upload(context.Background(), "big.jpg", "image/jpeg", data); !errors.Is(err, domain.ErrImageTooLarge) {
		t.Errorf("expected ErrImageTooLarge, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Error("nothing should be stored")
	}
}

func TestImageService_Upload_ExactLimitAccepted(t *testing.T) {
	svc, _ := newTestImageService()
	if _, err := svc.Upload(context.Background(), "max.jpg", "image/jpeg", make([]byte, domain.MaxImageBytes)); err != nil {
		t.Errorf("expected upload at the limit to succeed, got %v", err)
	}
}

func TestImageService_Upload_NotAnImage(t *testing.T) {
	svc, _ := newTestImageService()
	for _, ct := range []string{"application/pdf", "text/plain", ""} {
		if _, err := svc.Upload(context.Background(), "f", ct, []byte("x")); !errors.Is(err, domain.ErrNotAnImage) {
			t.Errorf("content type %q: expected ErrNotAnImage, got %v", ct, err)
		}
	}
}

func TestImageService_Get_NotFound(t *testing.T) {
	svc, _ := newTestImageService()
	if _, err := svc.Get(context.Background(), "img_missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
