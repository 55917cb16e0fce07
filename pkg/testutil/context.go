package testutil

import (
	"crypto/ed25519"
	"encoding/base64"
	"net/http"

	"warden/pkg/requestcontext"
)

// WithProof attaches a call proof to the request context, simulating what the
// proof-extraction middleware would do for a signed request.
func WithProof(req *http.Request, payload []byte, credential string) *http.Request {
	ctx := requestcontext.WithProof(req.Context(), requestcontext.CallProof{
		Payload:    payload,
		Credential: credential,
	})
	return req.WithContext(ctx)
}

// SignPayload produces the base64 credential an Ed25519 caller would send for
// the given payload.
func SignPayload(key ed25519.PrivateKey, payload []byte) string {
	return base64.StdEncoding.EncodeToString(ed25519.Sign(key, payload))
}

// WithRequestID attaches a request ID to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	ctx := requestcontext.WithRequestID(req.Context(), requestID)
	return req.WithContext(ctx)
}
