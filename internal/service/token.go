package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DashboardClaims are the claims carried by a dashboard session token.
// The token is advisory: it identifies who logged in to which team,
// but no endpoint requires it.
type DashboardClaims struct {
	TeamCode string `json:"teamCode"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// newDashboardToken signs a session token for a leader or member login.
func newDashboardToken(secret, teamCode, email, role string, expiryHours int) (string, error) {
	claims := DashboardClaims{
		TeamCode: teamCode,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
