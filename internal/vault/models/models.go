// Package models defines the registry key space and the wire shapes of the
// vault surface.
package models

import (
	"warden/pkg/domain"
)

// The registry's key space has two shapes: the admin singleton and the
// composite grant key. Role and principal alphabets exclude '/', so the
// composite encoding is unambiguous.
const adminKey = "admin"

const grantKeyPrefix = "grant/"

// AdminKey returns the storage key of the admin singleton.
func AdminKey() string {
	return adminKey
}

// GrantKey returns the storage key recording that principal holds role.
// Presence of the key is the membership flag.
func GrantKey(role domain.Role, principal domain.Principal) string {
	return grantKeyPrefix + role.String() + "/" + principal.String()
}

// GrantMarker is the value stored under a grant key. Only key presence
// matters; the marker keeps values non-empty for stores that reject empty
// writes.
var GrantMarker = []byte{1}

// InitializeRequest bootstraps the vault with its admin principal.
type InitializeRequest struct {
	Admin string `json:"admin"`
}

// RoleChangeRequest grants or revokes a role. Caller is a claim; the guard
// verifies it against both the role state and the call proof.
type RoleChangeRequest struct {
	Caller  string `json:"caller"`
	Account string `json:"account"`
	Role    string `json:"role"`
}

// HasRoleResponse answers a membership query.
type HasRoleResponse struct {
	Account string `json:"account"`
	Role    string `json:"role"`
	HasRole bool   `json:"has_role"`
}

// AdminResponse reports the admin singleton.
type AdminResponse struct {
	Admin string `json:"admin"`
}
