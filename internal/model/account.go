package model

import "time"

// Role is the capability level attached to an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account is an actively employed identity. It is a pure domain model with no
// database-specific dependencies or tags beyond JSON naming.
// SecretHash is a bcrypt hash of the login credential and is never serialized.
type Account struct {
	ID          string    `json:"id"`
	LoginID     string    `json:"login_id"`
	SecretHash  string    `json:"-"`
	DisplayName string    `json:"display_name"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// ArchivedAccount is a former employee. It carries the same fields as Account
// but lives in a disjoint identity space: a fresh ID is minted on archival and
// the active-space ID is never reused.
type ArchivedAccount struct {
	ID          string    `json:"id"`
	LoginID     string    `json:"login_id"`
	SecretHash  string    `json:"-"`
	DisplayName string    `json:"display_name"`
	Role        Role      `json:"role"`
	ArchivedAt  time.Time `json:"archived_at"`
}
