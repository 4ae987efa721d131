package models

// Credentials is the signup/signin request payload. Transient: it is never
// persisted, only serialized into a request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identity is the auth service's answer to "who owns this token".
type Identity struct {
	Data IdentityData `json:"data"`
}

type IdentityData struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}
