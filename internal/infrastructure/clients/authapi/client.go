package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/zatekoja/Hotelbookingdesign/backend/pkg/errors"
)

// Client is the auth backend client. The backend is not ours, so responses
// are normalized defensively: the token and user object each appear under
// one of several field names depending on the deployment.
type Client interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
}

// AuthResult carries the normalized outcome of a login or register call.
type AuthResult struct {
	Token string
	User  UserInfo
}

// UserInfo is the user object as the backend reported it. HasUser is false
// when the body carried no usable user object and the caller should fall
// back to the submitted form values.
type UserInfo struct {
	ID      string
	Name    string
	Email   string
	Role    string
	Room    string
	Phone   string
	HasUser bool
}

// fallbackToken mirrors the historical client behavior for backends that
// return no token field at all.
const fallbackToken = "token-simulado"

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerRequest carries the name under "user", the wire name the backend
// expects.
type registerRequest struct {
	User     string `json:"user"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type wireUser struct {
	ID    interface{} `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  string      `json:"role"`
	Room  string      `json:"room"`
	Phone string      `json:"phone"`
}

// idString renders the backend's id field, which has been observed as both
// a number and a string.
func idString(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

type authEnvelope struct {
	Token       string          `json:"token"`
	AccessToken string          `json:"access_token"`
	Message     string          `json:"message"`
	User        json.RawMessage `json:"user"`
	Data        json.RawMessage `json:"data"`
}

func NewClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	return c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, "login failed")
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	return c.post(ctx, "/auth/register", registerRequest{User: name, Email: email, Password: password}, "registration failed")
}

func (c *HTTPClient) post(ctx context.Context, path string, payload interface{}, fallbackMsg string) (*AuthResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("auth backend unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to read auth response", err)
	}

	// Any 2xx is success; register backends conventionally answer 201.
	succeeded := resp.StatusCode >= 200 && resp.StatusCode <= 299

	var envelope authEnvelope
	if unmarshalErr := json.Unmarshal(raw, &envelope); unmarshalErr != nil && succeeded {
		return nil, apperrors.NewExternalError("malformed auth response", unmarshalErr)
	}

	if !succeeded {
		msg := envelope.Message
		if msg == "" {
			msg = fallbackMsg
		}
		return nil, apperrors.NewUnauthorizedError(msg)
	}

	token := envelope.Token
	if token == "" {
		token = envelope.AccessToken
	}
	if token == "" {
		token = fallbackToken
	}

	return &AuthResult{
		Token: token,
		User:  normalizeUser(envelope, raw),
	}, nil
}

// normalizeUser extracts the user object from "user", "data", or the
// response root, whichever first yields something usable.
func normalizeUser(envelope authEnvelope, raw []byte) UserInfo {
	for _, candidate := range [][]byte{envelope.User, envelope.Data, raw} {
		if len(candidate) == 0 {
			continue
		}
		var wire wireUser
		if err := json.Unmarshal(candidate, &wire); err != nil {
			continue
		}
		if wire.Email == "" && wire.Name == "" && wire.Role == "" {
			continue
		}
		return UserInfo{
			ID:      idString(wire.ID),
			Name:    wire.Name,
			Email:   wire.Email,
			Role:    wire.Role,
			Room:    wire.Room,
			Phone:   wire.Phone,
			HasUser: true,
		}
	}
	return UserInfo{}
}
