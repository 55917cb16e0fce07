package domain

import (
	"strings"

	dErrors "warden/pkg/domain-errors"
)

// Role is an opaque named capability tag. The registry does not interpret role
// names, only their membership; the vocabulary is open beyond the well-known
// names below.
type Role string

// Well-known roles. RoleAdmin is special only to the guard: governing power
// flows from the admin singleton, not from a grant of this name.
const (
	RoleAdmin     Role = "admin"
	RoleOperator  Role = "operator"
	RoleTreasurer Role = "treasurer"
)

const maxRoleLen = 64

// ParseRole validates and returns a Role from external input. Names are
// lowercase tags so the grant key space stays canonical.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "role must not be empty")
	}
	if len(s) > maxRoleLen {
		return "", dErrors.New(dErrors.CodeInvalidInput, "role name too long")
	}
	s = strings.ToLower(s)
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' && r != '-' {
			return "", dErrors.New(dErrors.CodeInvalidInput, "role may only contain letters, digits, '_' and '-'")
		}
	}
	return Role(s), nil
}

func (r Role) String() string {
	return string(r)
}

// IsZero reports whether the role is unset.
func (r Role) IsZero() bool {
	return r == ""
}
