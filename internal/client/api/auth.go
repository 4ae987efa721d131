package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/mesto-cli/internal/client/models"
)

// TokenStore is the slice of the session store the auth client needs:
// persisting the token issued on a successful sign-in.
type TokenStore interface {
	Save(ctx context.Context, token string) error
}

// AuthClient talks to the auth service. Its base URL is independent of the
// content API gateway.
//
// The original front-end collapsed "bad credentials", "network unreachable"
// and "malformed response" into one empty result. Here each class is a
// distinct error (ErrUnauthorized, ErrUnavailable, decode errors); callers
// that only care about success/failure can keep treating them uniformly.
type AuthClient struct {
	baseURL string
	store   TokenStore
	httpc   *http.Client
}

// NewAuthClient builds an AuthClient. The store receives the token issued by
// LogIn; Register and TokenValid never touch it.
func NewAuthClient(baseURL string, store TokenStore) *AuthClient {
	return &AuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		httpc:   &http.Client{},
	}
}

func (a *AuthClient) post(ctx context.Context, path string, payload any, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return mapStatus(resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Register creates a new account and returns the identity the service echoes
// back.
func (a *AuthClient) Register(ctx context.Context, creds models.Credentials) (*models.Identity, error) {
	var id models.Identity
	if err := a.post(ctx, "/signup", creds, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

type signinResponse struct {
	Token string `json:"token"`
}

// LogIn signs in and, on success, persists the issued token into the store
// before returning it. On any failure the store is left untouched.
func (a *AuthClient) LogIn(ctx context.Context, creds models.Credentials) (string, error) {
	var resp signinResponse
	if err := a.post(ctx, "/signin", creds, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: signin response carries no token", ErrUnauthorized)
	}
	if err := a.store.Save(ctx, resp.Token); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}
	return resp.Token, nil
}

// TokenValid asks the auth service who owns the token. A non-nil identity
// means the token is still accepted. Pure introspection: the store is never
// mutated here.
func (a *AuthClient) TokenValid(ctx context.Context, token string) (*models.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/users/me", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, mapStatus(resp.StatusCode)
	}

	var id models.Identity
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &id, nil
}
