package jwt

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/absencetrack/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(session user.Session) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(session user.Session) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":  session.ID,
		"username": session.Username,
		"role":     string(session.Role),
		"type":     "access",
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}

// RevokeToken marks a token as logged out. Revoking the same token twice
// is a no-op, which keeps logout idempotent.
func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// SessionFromContext rebuilds the acting session from the verified token
// claims carried by the request context. Services use this so every
// mutating operation knows its acting identity without trusting the caller.
func SessionFromContext(ctx context.Context) (user.Session, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Session{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return user.Session{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return user.Session{}, fmt.Errorf("username claim is missing or invalid")
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return user.Session{}, fmt.Errorf("role claim is missing or invalid")
	}

	return user.Session{
		ID:       int(userID),
		Username: username,
		Role:     user.Role(role),
	}, nil
}
