package models

import "strings"

// User is a registered account stored in the flat document. Password holds
// either a hashed credential record or, on records written before hashing
// existed, the raw plaintext; loads migrate the latter in place.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// DisplayName returns the user's name, falling back to the username for
// records created before the name field existed.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return u.Username
}
