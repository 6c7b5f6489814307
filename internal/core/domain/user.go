package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// User models a registered account. There is no update or delete
// lifecycle: a user is created once at registration, and the issued ID is
// the opaque identity the client presents on every subsequent request.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Login     string    `json:"login"`
	CreatedAt time.Time `json:"created_at"`
}
