package middleware_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warden/internal/platform/middleware"
	"warden/pkg/requestcontext"
)

func TestCallProofCapturesSignatureAndRestoresBody(t *testing.T) {
	var (
		gotProof requestcontext.CallProof
		gotBody  []byte
	)
	handler := middleware.CallProof(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotProof = requestcontext.Proof(r.Context())
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = body
	}))

	payload := []byte(`{"caller":"a","account":"b","role":"operator"}`)
	req := httptest.NewRequest(http.MethodPost, "/vault/roles/grant", bytes.NewReader(payload))
	req.Header.Set(middleware.SignatureHeader, "c2lnbmF0dXJl")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, payload, gotProof.Payload)
	assert.Equal(t, "c2lnbmF0dXJl", gotProof.Credential)
	assert.Equal(t, payload, gotBody, "body must be readable again downstream")
}

func TestCallProofFallsBackToBearerToken(t *testing.T) {
	var gotProof requestcontext.CallProof
	handler := middleware.CallProof(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotProof = requestcontext.Proof(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/vault/roles/grant", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Authorization", "Bearer some-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "some-token", gotProof.Credential)
}

func TestCallProofRejectsOversizedBody(t *testing.T) {
	reached := false
	handler := middleware.CallProof(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	oversized := bytes.Repeat([]byte("a"), 1<<20+1)
	req := httptest.NewRequest(http.MethodPost, "/vault/roles/grant", bytes.NewReader(oversized))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.False(t, reached, "oversized requests must not reach the handler")
}

func TestCallProofAcceptsBodyAtLimit(t *testing.T) {
	var gotProof requestcontext.CallProof
	handler := middleware.CallProof(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotProof = requestcontext.Proof(r.Context())
	}))

	atLimit := bytes.Repeat([]byte("a"), 1<<20)
	req := httptest.NewRequest(http.MethodPost, "/vault/roles/grant", bytes.NewReader(atLimit))
	req.Header.Set(middleware.SignatureHeader, "c2ln")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, gotProof.Payload, 1<<20)
}
