package auth

import (
	"context"
	"testing"

	"github.com/absencetrack/attendance-backend-go/internal/domain/auth"
	"github.com/absencetrack/attendance-backend-go/internal/domain/user"
	jwtpkg "github.com/absencetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/absencetrack/attendance-backend-go/internal/pkg/validator"
	"github.com/absencetrack/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (auth.AuthService, jwtpkg.Service) {
	t.Helper()
	jwtService := jwtpkg.NewJWTService("test-secret-key-for-jwt", "1h")
	userRepo := memory.NewUserRepository([]user.Credential{
		{ID: 1, Username: "hr", Password: "hr123"},
		{ID: 2, Username: "manager", Password: "manager123"},
	})
	return NewAuthService(userRepo, jwtService), jwtService
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "hr", Password: "hr123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Positive(t, resp.AccessTokenExpiresIn)
	assert.Equal(t, 1, resp.User.ID)
	assert.Equal(t, "hr", resp.User.Username)
	assert.Equal(t, user.RoleAdministrator, resp.User.Role)
}

func TestAuthService_Login_StaffRole(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "manager", Password: "manager123",
	})

	require.NoError(t, err)
	assert.Equal(t, user.RoleStaff, resp.User.Role)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"unknown username", "nobody", "hr123"},
		{"wrong password", "hr", "wrong"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), auth.LoginRequest{
				Username: c.username, Password: c.password,
			})

			// Both failure modes collapse into the same error so the
			// response does not leak which usernames exist.
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_ValidationFailures(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name string
		req  auth.LoginRequest
	}{
		{"missing username", auth.LoginRequest{Password: "hr123"}},
		{"missing password", auth.LoginRequest{Username: "hr"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), c.req)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	svc, jwtService := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "hr", Password: "hr123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(resp.AccessToken))

	// Logging out again, or with no token at all, still succeeds.
	require.NoError(t, svc.Logout(context.Background(), resp.AccessToken))
	require.NoError(t, svc.Logout(context.Background(), ""))
}
