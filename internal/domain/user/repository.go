package user

import "context"

// UserRepository defines read access to the static credential list.
// Credentials are loaded once from the seed document and never mutated
// or persisted anywhere else.
type UserRepository interface {
	// GetByUsername retrieves a credential by exact username match.
	GetByUsername(ctx context.Context, username string) (Credential, error)

	// GetByID retrieves a credential by id.
	GetByID(ctx context.Context, id int) (Credential, error)
}
