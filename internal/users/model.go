package users

import "time"

// User is one persisted user record. The password never appears in plain
// form: only the derived hash and the salt it was derived with.
type User struct {
	Email        string     `json:"email"`
	DisplayName  string     `json:"displayName"`
	PasswordHash string     `json:"passwordHash"`
	PasswordSalt string     `json:"passwordSalt"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}
