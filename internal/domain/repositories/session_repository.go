package repositories

import (
	"context"

	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
)

// SessionRepository defines the interface for the persisted session: the
// current-user record and the auth token. Both are single keyed records
// replaced wholesale on login and removed on logout.
type SessionRepository interface {
	// SaveUser persists userData as the current-user record
	SaveUser(ctx context.Context, user *entities.User) error

	// LoadUser retrieves the persisted current user, or (nil, nil) when no
	// session is stored
	LoadUser(ctx context.Context) (*entities.User, error)

	// SaveToken persists the auth token
	SaveToken(ctx context.Context, token string) error

	// Clear removes the current-user record and the auth token
	Clear(ctx context.Context) error
}
