package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shifttracker/internal/common"
	"shifttracker/internal/server/models"
)

func testEmployee() *models.Employee {
	return &models.Employee{
		ID:       42,
		Name:     "Alice",
		Username: "alice",
		Role:     models.RoleEmployee,
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(testEmployee(), secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.EmployeeID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, models.RoleEmployee, claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testEmployee(), []byte("right"), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("wrong"))
	require.True(t, errors.Is(err, common.ErrInvalidToken))
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(testEmployee(), secret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, secret)
	require.True(t, errors.Is(err, common.ErrInvalidToken))
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token", []byte("secret"))
	require.True(t, errors.Is(err, common.ErrInvalidToken))
}

func TestParseToken_UnknownRole(t *testing.T) {
	secret := []byte("test-secret")

	e := testEmployee()
	e.Role = "SUPERVISOR"
	token, err := GenerateToken(e, secret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, secret)
	require.True(t, errors.Is(err, common.ErrInvalidToken))
}
