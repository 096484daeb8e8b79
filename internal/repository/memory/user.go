package memory

import (
	"context"

	"github.com/absencetrack/attendance-backend-go/internal/domain/user"
)

// userRepository serves the static credential list. The list never changes
// after construction, so no locking is needed.
type userRepository struct {
	credentials []user.Credential
}

func NewUserRepository(credentials []user.Credential) user.UserRepository {
	return &userRepository{credentials: credentials}
}

// GetByUsername implements user.UserRepository.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.Credential, error) {
	for _, cred := range r.credentials {
		if cred.Username == username {
			return cred, nil
		}
	}
	return user.Credential{}, user.ErrUserNotFound
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id int) (user.Credential, error) {
	for _, cred := range r.credentials {
		if cred.ID == id {
			return cred, nil
		}
	}
	return user.Credential{}, user.ErrUserNotFound
}
