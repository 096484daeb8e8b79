package auth

import (
	"context"

	"github.com/absencetrack/attendance-backend-go/internal/domain/user"
)

type AuthService interface {
	// Login matches the credentials against the loaded list and issues a
	// session token. The session is the credential minus its password.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Logout revokes the presented token. Idempotent: revoking a token
	// twice, or a token that was never issued, succeeds.
	Logout(ctx context.Context, token string) error

	// Me returns the session carried by the request context.
	Me(ctx context.Context) (user.Session, error)
}
