package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Role      RoleName  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role. Mutating event
// operations must check this before touching the store.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
