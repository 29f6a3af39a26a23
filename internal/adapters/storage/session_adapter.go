package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/providers"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/repositories"
)

// SessionAdapter implements SessionRepository over a KVStore. The current
// user and the auth token are single keyed records, replaced wholesale on
// each login. The key names match the historical client so existing stored
// sessions keep working.
type SessionAdapter struct {
	store     providers.KVStore
	keyPrefix string
}

// NewSessionAdapter creates a session repository over the given store
func NewSessionAdapter(store providers.KVStore, keyPrefix string) repositories.SessionRepository {
	return &SessionAdapter{
		store:     store,
		keyPrefix: keyPrefix,
	}
}

func (a *SessionAdapter) userKey() string {
	return a.keyPrefix + ":userData"
}

func (a *SessionAdapter) tokenKey() string {
	return a.keyPrefix + ":authToken"
}

// SaveUser persists user as the current-user record
func (a *SessionAdapter) SaveUser(ctx context.Context, user *entities.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := a.store.Set(ctx, a.userKey(), data); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	return nil
}

// LoadUser retrieves the persisted current user, or nil when no session is
// stored
func (a *SessionAdapter) LoadUser(ctx context.Context) (*entities.User, error) {
	data, err := a.store.Get(ctx, a.userKey())
	if errors.Is(err, providers.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	var user entities.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// SaveToken persists the auth token
func (a *SessionAdapter) SaveToken(ctx context.Context, token string) error {
	if err := a.store.Set(ctx, a.tokenKey(), []byte(token)); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// Clear removes the current-user record and the auth token in one call.
// Reservation records are deliberately untouched; they are keyed by user,
// not by session.
func (a *SessionAdapter) Clear(ctx context.Context) error {
	if err := a.store.MultiRemove(ctx, []string{a.tokenKey(), a.userKey()}); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
