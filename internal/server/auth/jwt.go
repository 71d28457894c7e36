// Package auth issues and verifies the signed session tokens (HS256).
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shifttracker/internal/common"
	"shifttracker/internal/server/models"
)

// Claims binds the employee identity into the token alongside the standard
// registered claims.
type Claims struct {
	jwt.RegisteredClaims
	EmployeeID int64       `json:"employeeId"`
	Username   string      `json:"username"`
	Role       models.Role `json:"role"`
}

func GenerateToken(e *models.Employee, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		EmployeeID: e.ID,
		Username:   e.Username,
		Role:       e.Role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	// a token minted with a different claim shape carries no usable role
	if !claims.Role.Valid() {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
