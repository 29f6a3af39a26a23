package services

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/repositories"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/infrastructure/clients/authapi"
	apperrors "github.com/zatekoja/Hotelbookingdesign/backend/pkg/errors"
)

// defaultUserName is used when neither the backend nor the form supplied a
// name.
const defaultUserName = "Invitado"

// AuthService orchestrates login and registration: it calls the auth
// backend, normalizes the response into the canonical User shape, resolves
// the role, and hands the session to the SessionService.
type AuthService struct {
	client     authapi.Client
	session    *SessionService
	sessions   repositories.SessionRepository
	adminEmail string
}

// NewAuthService creates a new auth service. adminEmail is the legacy
// fallback rule for backends that assert no role at all.
func NewAuthService(
	client authapi.Client,
	session *SessionService,
	sessions repositories.SessionRepository,
	adminEmail string,
) *AuthService {
	return &AuthService{
		client:     client,
		session:    session,
		sessions:   sessions,
		adminEmail: adminEmail,
	}
}

// Login authenticates against the backend and establishes the session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.establishSession(ctx, result, "", email)
}

// Register creates an account against the backend and establishes the
// session.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*entities.User, error) {
	result, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	return s.establishSession(ctx, result, name, email)
}

func (s *AuthService) establishSession(ctx context.Context, result *authapi.AuthResult, formName, formEmail string) (*entities.User, error) {
	user := s.normalizeUser(result, formName, formEmail)
	if user.Email == "" {
		return nil, apperrors.NewValidationError("the server did not provide a valid email")
	}

	if err := s.sessions.SaveToken(ctx, result.Token); err != nil {
		// A lost token means re-login later, not a failed login now.
		log.Warn().Err(err).Msg("failed to persist auth token")
	}

	if ok := s.session.SetUser(ctx, user); !ok {
		return nil, apperrors.NewStorageError("failed to persist session", nil)
	}
	return user, nil
}

// normalizeUser builds the canonical User from whatever the backend
// returned, falling back to the submitted form values.
func (s *AuthService) normalizeUser(result *authapi.AuthResult, formName, formEmail string) *entities.User {
	info := result.User
	if !info.HasUser {
		info = authapi.UserInfo{Name: formName, Email: formEmail}
	}

	name := info.Name
	if name == "" {
		name = formName
	}
	if name == "" {
		name = defaultUserName
	}

	email := info.Email
	if email == "" {
		email = formEmail
	}

	return &entities.User{
		Name:  name,
		Email: email,
		Role:  s.resolveRole(info.Role, result.Token, email),
		ID:    info.ID,
		Room:  info.Room,
		Phone: info.Phone,
	}
}

// resolveRole fixes the user's role at login time. A role asserted by the
// server wins: first the role field on the user object, then a "role" claim
// inside the access token. The hardcoded admin email remains as the last
// resort for backends that assert nothing.
func (s *AuthService) resolveRole(claimed, token, email string) entities.Role {
	if claimed != "" {
		return roleFromString(claimed)
	}
	if claim := roleClaimFromToken(token); claim != "" {
		return roleFromString(claim)
	}
	if s.adminEmail != "" && email == s.adminEmail {
		return entities.RoleAdmin
	}
	return entities.RoleClient
}

func roleFromString(role string) entities.Role {
	if strings.EqualFold(role, string(entities.RoleAdmin)) {
		return entities.RoleAdmin
	}
	return entities.RoleClient
}

// roleClaimFromToken extracts the "role" claim from a JWT access token. The
// token is parsed unverified: the client cannot check the backend's
// signature and only mirrors what the server asserted.
func roleClaimFromToken(token string) string {
	if token == "" {
		return ""
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}
