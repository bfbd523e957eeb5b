package model

import (
	"strings"
	"time"
)

const (
	RoleUser     = "user"
	RoleStandard = "standard"
	RoleAdmin    = "admin"
)

type User struct {
	ID             string    `json:"user_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Not exposed
	Role           string    `json:"role"`
	Points         int       `json:"points"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsAdminRole reports whether the role normalizes to the admin class.
func IsAdminRole(role string) bool {
	return strings.ToLower(role) == RoleAdmin
}

// IsMemberRole reports whether the role normalizes to the member class.
// Legacy rows may carry "standard" instead of "user".
func IsMemberRole(role string) bool {
	r := strings.ToLower(role)
	return r == RoleUser || r == RoleStandard
}
