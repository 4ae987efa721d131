package models

// Card is a photo card. The server returns cards ordered; the client keeps
// that order and prepends locally created cards (newest first).
type Card struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Link  string `json:"link"`
	Owner User   `json:"owner"`
	Likes []User `json:"likes"`
}

// LikedBy reports whether the user with the given id is in the like list.
func (c *Card) LikedBy(userID string) bool {
	for _, u := range c.Likes {
		if u.ID == userID {
			return true
		}
	}
	return false
}
