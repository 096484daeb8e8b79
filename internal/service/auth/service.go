package auth

import (
	"context"
	"fmt"

	"github.com/absencetrack/attendance-backend-go/internal/domain/auth"
	"github.com/absencetrack/attendance-backend-go/internal/domain/user"
	"github.com/absencetrack/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Login implements auth.AuthService. The credential list carries plaintext
// passwords straight from the seed document (hashing is out of scope for
// this system), so the match is an exact comparison. Unknown usernames and
// wrong passwords return the same error.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	cred, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if cred.Password != req.Password {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	session := cred.Session()
	token, expiresAt, err := a.Service.GenerateAccessToken(session)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		User:                 session,
	}, nil
}

// Logout implements auth.AuthService. Revoking an already revoked or never
// issued token is a no-op, so logout stays idempotent.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	a.Service.RevokeToken(token)
	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (user.Session, error) {
	return jwt.SessionFromContext(ctx)
}
