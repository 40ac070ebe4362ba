package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ddanshin/cipherdir/internal/client/models"
	"github.com/ddanshin/cipherdir/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// HTTPClient talks JSON to the directory service.
//
// The access token obtained by Login is attached as a bearer token to every
// subsequent request. Its expiry is read from the token's registered claims
// so an expired session is reported locally (ErrSessionExpired) instead of
// burning a round-trip on a guaranteed 401.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExp    time.Time
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) error {
	body, err := json.Marshal(loginRequest{Username: username, Password: string(password)})
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/v1/login", nil, body, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return fmt.Errorf("decoding login response: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = lr.AccessToken
	c.tokenExp = tokenExpiry(lr.AccessToken)
	return nil
}

// tokenExpiry reads the exp claim without verifying the signature; the
// client has no interest in trusting the token, only in predicting when the
// server will stop accepting it. A token that cannot be parsed gets a zero
// expiry and is treated as non-expiring.
func tokenExpiry(token string) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/ping", nil, nil, false)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.EncryptedUser, error) {
	return c.fetchUsers(ctx, nil)
}

func (c *HTTPClient) FilterUsers(ctx context.Context, role string) ([]models.EncryptedUser, error) {
	q := url.Values{}
	q.Set("role", role)
	return c.fetchUsers(ctx, q)
}

func (c *HTTPClient) fetchUsers(ctx context.Context, query url.Values) ([]models.EncryptedUser, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/users", query, nil, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var users []models.EncryptedUser
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decoding user list: %w", err)
	}
	return users, nil
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *HTTPClient) CreateUser(ctx context.Context, name, email, role string) error {
	body, err := json.Marshal(createUserRequest{Name: name, Email: email, Role: role})
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/v1/users", nil, body, true)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/v1/users/"+url.PathEscape(id), nil, nil, true)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) bearer() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.accessToken == "" {
		return "", ErrUnauthorized
	}
	if !c.tokenExp.IsZero() && time.Now().After(c.tokenExp) {
		return "", ErrSessionExpired
	}
	return c.accessToken, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body []byte, authed bool) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, err := c.bearer()
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", common.ErrorNotFound, msg)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: %s: %s", ErrUnavailable, resp.Status, msg)
	default:
		return nil, fmt.Errorf("%s: %s", resp.Status, msg)
	}
}
