// Package api implements the two REST clients of the Mesto backends: the
// content API gateway (cards and profile) and the auth service client.
// Both speak plain JSON over HTTP and perform a single attempt per call:
// no retries, no backoff, no client-level timeout. Callers control deadlines
// through the context.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/mesto-cli/internal/client/models"
)

// Gateway is the single authenticated entry point to the content API.
// It is configured once with a base URL and a fixed authorization value
// that is attached to every request.
type Gateway struct {
	baseURL       string
	authorization string
	httpc         *http.Client
}

// NewGateway builds a Gateway for the given base URL. The authorization
// value is sent verbatim in the Authorization header of every call.
func NewGateway(baseURL, authorization string) *Gateway {
	return &Gateway{
		baseURL:       strings.TrimRight(baseURL, "/"),
		authorization: authorization,
		httpc:         &http.Client{},
	}
}

// do executes one HTTP round-trip. On 2xx the response body is decoded into
// out (when out is non-nil). Any non-2xx status becomes an error carrying the
// numeric code; transport failures are wrapped in ErrUnavailable.
func (g *Gateway) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", g.authorization)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := g.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return mapStatus(resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// GetUserData fetches the current profile.
func (g *Gateway) GetUserData(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := g.do(ctx, http.MethodGet, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetInitialCards fetches the card list in server order.
func (g *Gateway) GetInitialCards(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	if err := g.do(ctx, http.MethodGet, "/cards", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

type addCardRequest struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// AddUserCard creates a card and returns the server's copy.
func (g *Gateway) AddUserCard(ctx context.Context, name, link string) (*models.Card, error) {
	var c models.Card
	if err := g.do(ctx, http.MethodPost, "/cards", addCardRequest{Name: name, Link: link}, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DelCard deletes a card by id. The response body is not consumed.
func (g *Gateway) DelCard(ctx context.Context, cardID string) error {
	return g.do(ctx, http.MethodDelete, "/cards/"+cardID, nil, nil)
}

// TakeCardLike likes a card and returns the updated card.
func (g *Gateway) TakeCardLike(ctx context.Context, cardID string) (*models.Card, error) {
	var c models.Card
	if err := g.do(ctx, http.MethodPut, "/cards/likes/"+cardID, nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// RemoveCardLike removes a like and returns the updated card.
func (g *Gateway) RemoveCardLike(ctx context.Context, cardID string) (*models.Card, error) {
	var c models.Card
	if err := g.do(ctx, http.MethodDelete, "/cards/likes/"+cardID, nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ChangeLikeCardStatus sets the like state: liked=true likes the card,
// liked=false removes the like.
func (g *Gateway) ChangeLikeCardStatus(ctx context.Context, cardID string, liked bool) (*models.Card, error) {
	if liked {
		return g.TakeCardLike(ctx, cardID)
	}
	return g.RemoveCardLike(ctx, cardID)
}

type patchUserRequest struct {
	Name  string `json:"name"`
	About string `json:"about"`
}

// PatchUserData updates the profile name/about fields.
func (g *Gateway) PatchUserData(ctx context.Context, name, about string) (*models.User, error) {
	var u models.User
	if err := g.do(ctx, http.MethodPatch, "/users/me", patchUserRequest{Name: name, About: about}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

type patchAvatarRequest struct {
	Avatar string `json:"avatar"`
}

// PatchUserAvatar updates the avatar URL.
func (g *Gateway) PatchUserAvatar(ctx context.Context, avatar string) (*models.User, error) {
	var u models.User
	if err := g.do(ctx, http.MethodPatch, "/users/me/avatar", patchAvatarRequest{Avatar: avatar}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
