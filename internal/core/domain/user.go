package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User models a storefront account. Accounts are created on the first identity
// exchange and are never hard-deleted.
type User struct {
	UserID         string    `json:"user_id" bson:"user_id"`
	Email          string    `json:"email" bson:"email"`
	Name           string    `json:"name" bson:"name"`
	Picture        string    `json:"picture,omitempty" bson:"picture,omitempty"`
	Role           string    `json:"role" bson:"role"`
	Phone          string    `json:"phone,omitempty" bson:"phone,omitempty"`
	WhatsAppNumber string    `json:"whatsapp_number,omitempty" bson:"whatsapp_number,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCustomer
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	Name           *string
	Phone          *string
	WhatsAppNumber *string
	Role           *string
}

func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Phone == nil && u.WhatsAppNumber == nil && u.Role == nil
}
