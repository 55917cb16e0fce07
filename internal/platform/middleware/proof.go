package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"warden/pkg/requestcontext"
)

// Header carrying the detached Ed25519 signature over the raw request body.
const SignatureHeader = "X-Signature"

// maxProofBody bounds how much request body the proof extractor will buffer.
const maxProofBody = 1 << 20

// CallProof captures the invocation credential before the body is consumed by
// JSON decoding. The credential is either the X-Signature header or a bearer
// token; which one the verifier uses depends on the configured auth mode. The
// body is restored so downstream handlers can decode it normally.
//
// Bodies over maxProofBody are rejected outright: a truncated payload would
// reach the decoder corrupt and could never verify against its signature.
func CallProof(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxProofBody+1))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if len(body) > maxProofBody {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		credential := r.Header.Get(SignatureHeader)
		if credential == "" {
			if after, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
				credential = after
			}
		}

		ctx := requestcontext.WithProof(r.Context(), requestcontext.CallProof{
			Payload:    body,
			Credential: credential,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
