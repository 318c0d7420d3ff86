package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the bearer token payload. Every issued token carries the same
// set: user id, email, category and the admin flag.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Category string `json:"category"`
	Admin    bool   `json:"admin"`
}
