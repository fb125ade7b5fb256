package model

import "fmt"

// Action is the closed set of operations a permission can grant on a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionManage Action = "manage"
)

// ValidAction reports whether a belongs to the closed action enum.
func ValidAction(a Action) bool {
	switch a {
	case ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionManage:
		return true
	}
	return false
}

// Permission represents a single (resource, action) capability.
// The universe of permissions is fixed per system instance and
// immutable once seeded.
type Permission struct {
	ID          string `json:"id"`
	Resource    string `json:"resource"` // e.g. "supplier"
	Action      Action `json:"action"`
	Description string `json:"description"`
}

// Key returns the (resource, action) pair in "resource:action" form,
// the identity used when comparing permission sets across roles.
func (p Permission) Key() string {
	return fmt.Sprintf("%s:%s", p.Resource, p.Action)
}
