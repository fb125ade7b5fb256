package model

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
)

// User represents an account scoped to exactly one tenant (or the
// "system" scope for the super-admin). Role is an owned snapshot taken
// at assignment time: editing a role later does not propagate to users
// that already carry it. That non-propagation is deliberate.
type User struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenantId"`
	Email     string     `json:"email"` // unique within tenant scope
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Password  string     `json:"password"` // plaintext in demo fixtures; see DESIGN.md on hashing
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// FullName returns the display name for audit and event payloads.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// NewID mints an identifier for records created through the CRUD surface.
// Seeded records keep their fixed literal IDs so repeated bootstraps stay
// reproducible; everything created afterwards gets a prefixed UUID.
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
