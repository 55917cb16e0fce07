// Package domain holds the primitive value types of the warden core.
//
// Principals and roles are constructed through Parse functions at trust
// boundaries so invalid values cannot flow into the registry; direct casting
// bypasses validation.
package domain

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"

	dErrors "warden/pkg/domain-errors"
)

// Principal is an externally verifiable identity: the base58 encoding of an
// Ed25519 public key. Warden never mints principals; they arrive from callers
// and are validated here. Equality is structural string equality.
type Principal string

// ParsePrincipal validates and returns a Principal from external input.
func ParsePrincipal(s string) (Principal, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "principal must not be empty")
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return "", dErrors.New(dErrors.CodeInvalidInput, "principal is not valid base58")
	}
	if len(raw) != ed25519.PublicKeySize {
		return "", dErrors.New(dErrors.CodeInvalidInput, "principal must encode a 32-byte public key")
	}
	return Principal(s), nil
}

// PrincipalFromKey encodes an Ed25519 public key as a Principal.
func PrincipalFromKey(key ed25519.PublicKey) Principal {
	return Principal(base58.Encode(key))
}

// PublicKey decodes the principal back into its verifying key. Only call on
// values produced by ParsePrincipal or PrincipalFromKey.
func (p Principal) PublicKey() (ed25519.PublicKey, error) {
	raw, err := base58.Decode(string(p))
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "principal is not valid base58")
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "principal must encode a 32-byte public key")
	}
	return ed25519.PublicKey(raw), nil
}

func (p Principal) String() string {
	return string(p)
}

// IsZero reports whether the principal is unset.
func (p Principal) IsZero() bool {
	return p == ""
}
