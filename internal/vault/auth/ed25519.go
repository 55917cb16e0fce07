package auth

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"

	"warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/requestcontext"
)

// Ed25519Verifier authenticates calls by checking a detached Ed25519
// signature over the invocation payload. The principal itself encodes the
// verifying key, so no key registry is needed.
type Ed25519Verifier struct{}

// NewEd25519Verifier constructs the signature-based authenticator.
func NewEd25519Verifier() *Ed25519Verifier {
	return &Ed25519Verifier{}
}

func (v *Ed25519Verifier) Verify(_ context.Context, principal domain.Principal, proof requestcontext.CallProof) error {
	if proof.Credential == "" {
		return dErrors.New(dErrors.CodeUnauthenticated, "call carries no signature")
	}
	key, err := principal.PublicKey()
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnauthenticated, "caller is not a verifiable principal")
	}
	sig, err := base64.StdEncoding.DecodeString(proof.Credential)
	if err != nil {
		return dErrors.New(dErrors.CodeUnauthenticated, "signature is not valid base64")
	}
	if len(sig) != ed25519.SignatureSize {
		return dErrors.New(dErrors.CodeUnauthenticated, "signature has wrong length")
	}
	if !ed25519.Verify(key, proof.Payload, sig) {
		return dErrors.New(dErrors.CodeUnauthenticated, "signature does not match caller")
	}
	return nil
}
