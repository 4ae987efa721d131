// Package models holds the client-side copies of objects owned by the Mesto
// backends. Field tags follow the wire format of the services.
package models

// User is the profile of an account as the content API returns it.
// Email is not part of the content API response; it is filled in from the
// auth service identity (or the submitted login form) after authentication.
type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email,omitempty"`
}
