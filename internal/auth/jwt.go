// Package auth issues and validates the session tokens the API runs on.
package auth

import (
	"errors"
	"time"

	"civicdesk/backend/internal/models"

	jwt "github.com/golang-jwt/jwt/v5"
)

const issuer = "civicdesk-service"

// Claims carries the actor identity inside a signed token. Role and
// department ride along so authorization never needs a profile lookup.
type Claims struct {
	Sub          string      `json:"sub"`
	Role         models.Role `json:"role"`
	Email        string      `json:"email"`
	DepartmentID *uint       `json:"department_id,omitempty"`
	jwt.RegisteredClaims
}

// CreateAccessToken signs a token for the given user.
func CreateAccessToken(u *models.User, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		Sub:          u.ID,
		Role:         u.Role,
		Email:        u.Email,
		DepartmentID: u.DepartmentID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseValidate checks the signature and expiry and returns the claims.
func ParseValidate(tokenStr string, secret []byte) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	if !c.Role.Valid() {
		return nil, errors.New("token carries an unknown role")
	}
	return c, nil
}
