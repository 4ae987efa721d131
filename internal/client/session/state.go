// Package session owns the client's authorization state: the persisted
// token, the state machine around it, and the cached profile/card data
// hydrated after authentication.
package session

// State is the authorization state of the client.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
)
