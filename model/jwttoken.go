package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type RefreshTokenRecord struct {
	UserID       string `firestore:"userid,omitempty"`
	RefreshToken string `firestore:"refreshtoken,omitempty"` // bcrypt hash of the token digest
	CreatedAt    int64  `firestore:"createdat,omitempty"`    // creation time in seconds
	Revoked      bool   `firestore:"revoked"`                // whether the token is revoked
	ExpiresIn    int64  `firestore:"expiresin,omitempty"`    // expiration in seconds
}

// Expired reports whether the record's stored lifetime has elapsed. A
// record with no lifetime set counts as expired.
func (r RefreshTokenRecord) Expired(now time.Time) bool {
	if r.ExpiresIn <= 0 {
		return true
	}
	return now.Unix() >= r.CreatedAt+r.ExpiresIn
}

type AccessClaims struct {
	UserID string   `json:"userId"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
