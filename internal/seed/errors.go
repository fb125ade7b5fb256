package seed

import "fmt"

// ConfigError reports a malformed permission configuration entry.
// Bootstrap treats it as unrecoverable.
type ConfigError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid permission config %q=%q: %s", e.Key, e.Value, e.Reason)
}

// RoleResolutionError reports that user provisioning referenced a role
// name absent from the role builder's output. This only happens when the
// canonical role set changes without updating the demo accounts.
type RoleResolutionError struct {
	RoleName string
}

func (e *RoleResolutionError) Error() string {
	return fmt.Sprintf("role %q not found among system roles", e.RoleName)
}
