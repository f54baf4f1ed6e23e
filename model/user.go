package model

import "time"

const (
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

type User struct {
	UserID    string    `firestore:"userid,omitempty"`
	Email     string    `firestore:"email,omitempty"`
	Password  string    `firestore:"password,omitempty"` // bcrypt hash, never sent to clients
	Role      []string  `firestore:"role"`
	CreatedAt time.Time `firestore:"createdat,omitempty"`
}

// ValidRoles reports whether every entry is a known role tag and at
// least one tag is present.
func ValidRoles(roles []string) bool {
	if len(roles) == 0 {
		return false
	}
	for _, r := range roles {
		if r != RoleManager && r != RoleEmployee {
			return false
		}
	}
	return true
}

// HasRole reports whether the role tag appears in the role set.
func HasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
