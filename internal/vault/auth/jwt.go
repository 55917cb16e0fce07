package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/requestcontext"
)

// JWTVerifier authenticates calls by a bearer token whose subject must equal
// the claimed principal. Intended for deployments where a gateway already
// issues caller tokens; the Ed25519 verifier is the default.
type JWTVerifier struct {
	signingKey []byte
}

// NewJWTVerifier constructs the token-based authenticator with the shared
// HMAC signing key.
func NewJWTVerifier(signingKey string) *JWTVerifier {
	return &JWTVerifier{signingKey: []byte(signingKey)}
}

func (v *JWTVerifier) Verify(_ context.Context, principal domain.Principal, proof requestcontext.CallProof) error {
	if proof.Credential == "" {
		return dErrors.New(dErrors.CodeUnauthenticated, "call carries no bearer token")
	}

	token, err := jwt.Parse(proof.Credential, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnauthenticated, "invalid bearer token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return dErrors.New(dErrors.CodeUnauthenticated, "token carries no subject")
	}
	if subject != principal.String() {
		return dErrors.New(dErrors.CodeUnauthenticated, "token subject does not match caller")
	}
	return nil
}
