// Package user implements the member directory and the friendship graph
// built on it.
//
// A friendship is a single row per unordered user pair carrying a status
// flag. A fresh request records a one-way edge; the reverse request
// reciprocates it. One-way edges are visible to the requester only.
package user

import "github.com/taibuivan/filmorate/pkg/date"

// User is a registered member of the service.
type User struct {
	ID       int64     `json:"id"`
	Email    string    `json:"email"`
	Login    string    `json:"login"`
	Name     string    `json:"name"`
	Birthday date.Date `json:"birthday"`
}

// JSON field names used in validation details.
const (
	FieldEmail    = "email"
	FieldLogin    = "login"
	FieldName     = "name"
	FieldBirthday = "birthday"
)
