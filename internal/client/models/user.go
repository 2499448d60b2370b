// Package models defines data records exchanged with the Pankitchen API.
package models

// User is the identity record returned by the /users/me/ endpoint.
// It is never cached client-side; callers fetch it fresh on demand.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}
