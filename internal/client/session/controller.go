package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/mesto-cli/internal/client/models"
	"github.com/dmitrijs2005/mesto-cli/internal/logging"
)

// AuthClient is the slice of the auth service the controller depends on.
type AuthClient interface {
	Register(ctx context.Context, creds models.Credentials) (*models.Identity, error)
	LogIn(ctx context.Context, creds models.Credentials) (string, error)
	TokenValid(ctx context.Context, token string) (*models.Identity, error)
}

// Gateway is the slice of the content API the controller depends on.
type Gateway interface {
	GetUserData(ctx context.Context) (*models.User, error)
	GetInitialCards(ctx context.Context) ([]models.Card, error)
	AddUserCard(ctx context.Context, name, link string) (*models.Card, error)
	DelCard(ctx context.Context, cardID string) error
	ChangeLikeCardStatus(ctx context.Context, cardID string, liked bool) (*models.Card, error)
	PatchUserData(ctx context.Context, name, about string) (*models.User, error)
	PatchUserAvatar(ctx context.Context, avatar string) (*models.User, error)
}

// Notifier receives the success/failure outcome of register and login
// attempts. The UI collaborator (here: the CLI) implements it.
type Notifier interface {
	Notify(success bool)
}

// Controller is the session state machine.
//
// Transitions:
//   - Start: no stored token, or a token the auth service rejects, ends in
//     Unauthenticated; an accepted token ends in Authenticated with the
//     email the auth service reports, followed by data hydration.
//   - Login: success authenticates under the submitted email (matching the
//     original front-end, which keyed hydration off the form value) and
//     hydrates; failure notifies and stays Unauthenticated.
//   - Register: never changes state, only notifies.
//   - Logout: clears the stored token and resets the cached data.
//
// Hydration is strictly sequential: the cards fetch is issued only after the
// profile fetch resolves. A profile failure aborts hydration and leaves the
// card cache empty.
type Controller struct {
	auth     AuthClient
	api      Gateway
	store    Store
	notifier Notifier
	log      logging.Logger

	mu    sync.Mutex
	state State
	email string
	user  *models.User
	cards []models.Card
}

func NewController(auth AuthClient, api Gateway, store Store, notifier Notifier, log logging.Logger) *Controller {
	return &Controller{
		auth:     auth,
		api:      api,
		store:    store,
		notifier: notifier,
		log:      log,
		state:    StateUnauthenticated,
	}
}

// Start attempts silent re-authentication from the stored token. It is meant
// to run once at process start.
func (c *Controller) Start(ctx context.Context) {
	token, err := c.store.Load(ctx)
	if err != nil {
		c.log.Error(ctx, "session store read failed", "error", err)
		c.setState(StateUnauthenticated, "")
		return
	}
	if token == "" {
		c.setState(StateUnauthenticated, "")
		return
	}

	c.setState(StateAuthenticating, "")
	id, err := c.auth.TokenValid(ctx, token)
	if err != nil {
		c.log.Warn(ctx, "stored token rejected", "error", err)
		c.setState(StateUnauthenticated, "")
		return
	}
	c.hydrate(ctx, id.Data.Email)
}

// Login authenticates with the given credentials. On success the controller
// is authenticated under the submitted email and hydration runs; on failure
// the notifier fires with success=false and the state stays Unauthenticated.
func (c *Controller) Login(ctx context.Context, creds models.Credentials) error {
	if _, err := c.auth.LogIn(ctx, creds); err != nil {
		c.log.Warn(ctx, "login failed", "email", creds.Email, "error", err)
		c.setState(StateUnauthenticated, "")
		c.notify(false)
		return err
	}
	c.hydrate(ctx, creds.Email)
	return nil
}

// Register creates an account. It only reports the outcome through the
// notifier; a fresh account still has to log in.
func (c *Controller) Register(ctx context.Context, creds models.Credentials) error {
	if _, err := c.auth.Register(ctx, creds); err != nil {
		c.log.Warn(ctx, "registration failed", "email", creds.Email, "error", err)
		c.notify(false)
		return err
	}
	c.notify(true)
	return nil
}

// Logout drops the stored token and resets the session. The original
// front-end had no logout path; this closes that gap.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateUnauthenticated
	c.email = ""
	c.user = nil
	c.cards = nil
	return nil
}

// hydrate flips the session to Authenticated and loads profile then cards.
// The authenticated flag is set before the fetches, as the original UI did.
func (c *Controller) hydrate(ctx context.Context, email string) {
	c.setState(StateAuthenticated, email)

	u, err := c.api.GetUserData(ctx)
	if err != nil {
		c.log.Error(ctx, "profile fetch failed, hydration aborted", "error", err)
		return
	}
	u.Email = email
	c.mu.Lock()
	c.user = u
	c.mu.Unlock()

	cards, err := c.api.GetInitialCards(ctx)
	if err != nil {
		c.log.Error(ctx, "cards fetch failed", "error", err)
		return
	}
	c.mu.Lock()
	c.cards = cards
	c.mu.Unlock()
}

// UpdateProfile patches name/about and replaces the cached profile with the
// server's copy.
func (c *Controller) UpdateProfile(ctx context.Context, name, about string) error {
	u, err := c.api.PatchUserData(ctx, name, about)
	if err != nil {
		c.log.Error(ctx, "profile update failed", "error", err)
		return err
	}
	c.replaceUser(u)
	return nil
}

// UpdateAvatar patches the avatar URL and replaces the cached profile.
func (c *Controller) UpdateAvatar(ctx context.Context, avatar string) error {
	u, err := c.api.PatchUserAvatar(ctx, avatar)
	if err != nil {
		c.log.Error(ctx, "avatar update failed", "error", err)
		return err
	}
	c.replaceUser(u)
	return nil
}

// AddCard creates a card and prepends the server's copy to the cache
// (newest first).
func (c *Controller) AddCard(ctx context.Context, name, link string) (*models.Card, error) {
	card, err := c.api.AddUserCard(ctx, name, link)
	if err != nil {
		c.log.Error(ctx, "card create failed", "error", err)
		return nil, err
	}
	c.mu.Lock()
	c.cards = append([]models.Card{*card}, c.cards...)
	c.mu.Unlock()
	return card, nil
}

// DeleteCard removes a card on the server and drops it from the cache.
func (c *Controller) DeleteCard(ctx context.Context, cardID string) error {
	if err := c.api.DelCard(ctx, cardID); err != nil {
		c.log.Error(ctx, "card delete failed", "card", cardID, "error", err)
		return err
	}
	c.mu.Lock()
	kept := c.cards[:0]
	for _, card := range c.cards {
		if card.ID != cardID {
			kept = append(kept, card)
		}
	}
	c.cards = kept
	c.mu.Unlock()
	return nil
}

// ToggleLike flips the current user's like on a card and replaces the cached
// card with the server response. There is no in-flight guard: overlapping
// toggles resolve last-response-wins, exactly as the original did.
func (c *Controller) ToggleLike(ctx context.Context, cardID string) (*models.Card, error) {
	c.mu.Lock()
	var userID string
	if c.user != nil {
		userID = c.user.ID
	}
	liked := false
	found := false
	for i := range c.cards {
		if c.cards[i].ID == cardID {
			liked = c.cards[i].LikedBy(userID)
			found = true
			break
		}
	}
	c.mu.Unlock()
	if !found {
		return nil, fmt.Errorf("unknown card %s", cardID)
	}

	updated, err := c.api.ChangeLikeCardStatus(ctx, cardID, !liked)
	if err != nil {
		c.log.Error(ctx, "like toggle failed", "card", cardID, "error", err)
		return nil, err
	}

	c.mu.Lock()
	for i := range c.cards {
		if c.cards[i].ID == cardID {
			c.cards[i] = *updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

// State returns the current authorization state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Email returns the email the session is authenticated under, or "".
func (c *Controller) Email() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.email
}

// User returns a copy of the cached profile, or nil before hydration.
func (c *Controller) User() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Cards returns a copy of the cached card list.
func (c *Controller) Cards() []models.Card {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// replaceUser swaps the cached profile for the server's copy. The content
// API response carries no email, so the session's email is retained.
func (c *Controller) replaceUser(u *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	u.Email = c.email
	c.user = u
}

func (c *Controller) setState(s State, email string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
	c.email = email
}

func (c *Controller) notify(success bool) {
	if c.notifier != nil {
		c.notifier.Notify(success)
	}
}
