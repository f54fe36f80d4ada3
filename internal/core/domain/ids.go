package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func hexID(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}

func NewUserID() string         { return "user_" + hexID(12) }
func NewBrandID() string        { return "brand_" + hexID(8) }
func NewModelID() string        { return "model_" + hexID(8) }
func NewProductID() string      { return "prod_" + hexID(8) }
func NewNotificationID() string { return "notif_" + hexID(8) }
func NewImageID() string        { return "img_" + hexID(12) }

// NewOrderID returns a human-readable id in the format ORD-YYYYMMDD-XXXXXX.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), strings.ToUpper(hexID(6)))
}
