package domain

import (
	"fmt"
	"time"
)

// MaxImageBytes is the upload cap for design images.
const MaxImageBytes = 5 * 1024 * 1024

// UploadedImage stores an image as base64 text inside the document store.
type UploadedImage struct {
	ImageID     string    `bson:"image_id"`
	Filename    string    `bson:"filename"`
	ContentType string    `bson:"content_type"`
	Data        string    `bson:"data"`
	SizeBytes   int       `bson:"size_bytes"`
	CreatedAt   time.Time `bson:"created_at"`
}

// DataURL renders the image as an inline data URL.
func (img *UploadedImage) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", img.ContentType, img.Data)
}
