package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the payload of a bearer token issued to a tenant user
type TokenClaims struct {
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Caller is the authenticated identity a request acts as
type Caller struct {
	TenantID string
	UserID   string
	Role     string
	Email    string
}

// IsAdmin reports whether the caller holds the tenant admin role
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
