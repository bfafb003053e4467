package models

import "strings"

// Role is a user's role as reported by the server
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// ParseRole maps a wire role string to a Role.
// Anything that is not "admin" is treated as a member so no admin gate opens by accident.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleMember
}

// IsAdmin reports whether the role is admin
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User represents an account known to the server
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// GetID returns the user ID
func (u *User) GetID() int {
	return u.ID
}

// Credentials is the body of POST /login and POST /signup
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupResult is the response of POST /signup
type SignupResult struct {
	ID   int  `json:"id"`
	Role Role `json:"role"`
}

// LoginResult is the response of POST /login
type LoginResult struct {
	ID       int    `json:"id"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
}

// Session is the client-held record of the authenticated identity
type Session struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// GetID returns the session's user ID
func (s Session) GetID() int {
	return s.UserID
}
