package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/providers"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/Hotelbookingdesign/backend/pkg/errors"
)

// SessionService is the single source of truth for who is logged in and what
// they have reserved. It mediates all storage access, keeps the in-memory
// reservation list to exactly the current user's subset, and publishes
// session events so presentation layers can re-render.
//
// Storage failures are logged and converted to false/empty results; they
// never propagate to callers as errors.
type SessionService struct {
	sessions     repositories.SessionRepository
	reservations repositories.ReservationRepository
	bus          providers.EventBus

	// ops serializes mutating operations so two in-flight mutations can
	// never interleave their storage steps.
	ops sync.Mutex

	// state guards the published in-memory snapshot.
	state       sync.RWMutex
	currentUser *entities.User
	list        []*entities.Reservation
	loading     bool
}

// NewSessionService creates a new session service
func NewSessionService(
	sessions repositories.SessionRepository,
	reservations repositories.ReservationRepository,
	bus providers.EventBus,
) *SessionService {
	return &SessionService{
		sessions:     sessions,
		reservations: reservations,
		bus:          bus,
	}
}

// Load restores the persisted session at process start: when a current-user
// record exists, it becomes the current user and their reservations are
// loaded. The loading flag is true for the duration and false on completion
// regardless of outcome.
func (s *SessionService) Load(ctx context.Context) {
	s.ops.Lock()
	defer s.ops.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	user, err := s.sessions.LoadUser(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load persisted session")
		return
	}
	if user == nil {
		return
	}

	s.state.Lock()
	s.currentUser = user
	s.state.Unlock()
	s.publish(ctx, providers.EventChannelSession, entities.SessionEventTypeUserSet, user.Email, "")

	s.loadReservationsLocked(ctx, user.Email)
}

// SetUser persists userData as the current session and loads that user's
// reservations. The in-memory user is published only after persistence
// succeeds; on failure the prior state is untouched.
func (s *SessionService) SetUser(ctx context.Context, user *entities.User) bool {
	s.ops.Lock()
	defer s.ops.Unlock()

	if user == nil || user.Email == "" {
		log.Warn().Msg("refusing to set user without an email")
		return false
	}

	if err := s.sessions.SaveUser(ctx, user); err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("failed to persist user")
		return false
	}

	s.state.Lock()
	s.currentUser = user
	s.state.Unlock()
	s.publish(ctx, providers.EventChannelSession, entities.SessionEventTypeUserSet, user.Email, "")

	s.loadReservationsLocked(ctx, user.Email)
	return true
}

// LoadReservations replaces the in-memory list with the persisted
// reservations whose UserID equals userID, in creation order. Errors are
// logged and leave the prior list in place.
func (s *SessionService) LoadReservations(ctx context.Context, userID string) {
	s.ops.Lock()
	defer s.ops.Unlock()
	s.loadReservationsLocked(ctx, userID)
}

func (s *SessionService) loadReservationsLocked(ctx context.Context, userID string) {
	list, err := s.reservations.ListByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user", userID).Msg("failed to load reservations")
		return
	}

	s.state.Lock()
	s.list = list
	s.state.Unlock()
	s.publish(ctx, providers.EventChannelReservations, entities.SessionEventTypeReservationsLoaded, userID, "")
}

// AddReservation books a room for the current user. A canonical ID is
// assigned when the reservation carries none; the record is persisted first
// and only then published in memory, so a storage failure cannot leave the
// two diverged. Returns false when no user is logged in or storage fails.
func (s *SessionService) AddReservation(ctx context.Context, res *entities.Reservation) bool {
	s.ops.Lock()
	defer s.ops.Unlock()

	current := s.CurrentUser()
	if current == nil {
		log.Warn().Msg("cannot add reservation: no user logged in")
		return false
	}

	if res.UserID == "" {
		res.UserID = current.Email
	}
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	if res.CreatedAt == "" {
		res.CreatedAt = time.Now().Format(time.RFC3339)
	}

	if err := s.reservations.Create(ctx, res); err != nil {
		log.Error().Err(err).Str("reservation", res.ID).Msg("failed to persist reservation")
		return false
	}

	if res.UserID == current.Email {
		s.state.Lock()
		s.list = append(s.list, res)
		s.state.Unlock()
	}
	s.publish(ctx, providers.EventChannelReservations, entities.SessionEventTypeReservationAdded, res.UserID, res.ID)
	return true
}

// CancelReservation removes the reservation with the given canonical ID.
// Only the current user's own reservations can be cancelled. Cancelling an
// ID that no longer exists succeeds; the end state is the same.
func (s *SessionService) CancelReservation(ctx context.Context, id string) bool {
	s.ops.Lock()
	defer s.ops.Unlock()

	current := s.CurrentUser()
	if current == nil {
		log.Warn().Msg("cannot cancel reservation: no user logged in")
		return false
	}

	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("reservation", id).Msg("failed to look up reservation")
		return false
	}
	if res == nil {
		s.removeFromList(id)
		return true
	}
	if res.UserID != current.Email {
		log.Warn().Str("reservation", id).Str("owner", res.UserID).Msg("refusing to cancel another user's reservation")
		return false
	}

	if err := s.reservations.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("reservation", id).Msg("failed to delete reservation")
		return false
	}

	s.removeFromList(id)
	s.publish(ctx, providers.EventChannelReservations, entities.SessionEventTypeReservationCancelled, current.Email, id)
	return true
}

// Logout clears the persisted auth token and current-user record, then the
// in-memory session. Persisted reservations are left intact; they belong to
// the user, not the session.
func (s *SessionService) Logout(ctx context.Context) bool {
	s.ops.Lock()
	defer s.ops.Unlock()

	previous := s.CurrentUser()

	if err := s.sessions.Clear(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear persisted session")
		return false
	}

	s.state.Lock()
	s.currentUser = nil
	s.list = nil
	s.state.Unlock()

	email := ""
	if previous != nil {
		email = previous.Email
	}
	s.publish(ctx, providers.EventChannelSession, entities.SessionEventTypeUserCleared, email, "")
	return true
}

// CurrentUser returns the logged-in user, or nil.
func (s *SessionService) CurrentUser() *entities.User {
	s.state.RLock()
	defer s.state.RUnlock()
	return s.currentUser
}

// Reservations returns a copy of the current user's reservation list in
// creation order.
func (s *SessionService) Reservations() []*entities.Reservation {
	s.state.RLock()
	defer s.state.RUnlock()
	out := make([]*entities.Reservation, len(s.list))
	copy(out, s.list)
	return out
}

// Events subscribes to session state changes on the given channel. The
// subscription ends when ctx is cancelled.
func (s *SessionService) Events(ctx context.Context, channel string) (<-chan *entities.SessionEvent, error) {
	if s.bus == nil {
		return nil, apperrors.NewValidationError("no event bus configured")
	}
	return s.bus.Subscribe(ctx, channel)
}

// IsLoading reports whether a session restore is in flight.
func (s *SessionService) IsLoading() bool {
	s.state.RLock()
	defer s.state.RUnlock()
	return s.loading
}

func (s *SessionService) setLoading(v bool) {
	s.state.Lock()
	s.loading = v
	s.state.Unlock()
}

func (s *SessionService) removeFromList(id string) {
	s.state.Lock()
	defer s.state.Unlock()
	kept := s.list[:0]
	for _, res := range s.list {
		if res.ID != id {
			kept = append(kept, res)
		}
	}
	s.list = kept
}

func (s *SessionService) publish(ctx context.Context, channel string, eventType entities.SessionEventType, email, reservationID string) {
	if s.bus == nil {
		return
	}
	event := entities.NewSessionEvent(eventType, email, reservationID)
	if err := s.bus.Publish(ctx, channel, event); err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("failed to publish session event")
	}
}
