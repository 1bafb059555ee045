package services

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/proforge/profilepdf/internal/config"
	"github.com/proforge/profilepdf/internal/types"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the token payload the service issues and accepts.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate checks the admin credentials. ADMIN_PASSWORD may hold either a
// bcrypt hash or, for local development, the plain password.
func Authenticate(cfg *config.Config, email, password string) error {
	if email != cfg.AdminEmail {
		return types.Unauthenticated("Invalid credentials")
	}

	if strings.HasPrefix(cfg.AdminPassword, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPassword), []byte(password)); err != nil {
			return types.Unauthenticated("Invalid credentials")
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(cfg.AdminPassword), []byte(password)) != 1 {
		return types.Unauthenticated("Invalid credentials")
	}
	return nil
}

// IssueToken mints a signed bearer token for the given subject.
func IssueToken(cfg *config.Config, subject string) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.TokenTTLHours) * time.Hour)

	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    "profilepdf",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and verifies a bearer token, returning its claims.
func ValidateToken(cfg *config.Config, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, types.Unauthenticated(fmt.Sprintf("Invalid token: %v", err))
	}
	if !token.Valid {
		return nil, types.Unauthenticated("Invalid token")
	}
	return claims, nil
}
