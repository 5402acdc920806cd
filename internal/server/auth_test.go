package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAPIKeyVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name       string
		hash       string
		header     string
		wantStatus int
	}{
		{"no key configured, no header", "", "", http.StatusOK},
		{"no key configured, header sent", "", "anything", http.StatusOK},
		{"key configured, correct header", string(hash), "secret", http.StatusOK},
		{"key configured, wrong header", string(hash), "wrong", http.StatusUnauthorized},
		{"key configured, empty header", string(hash), "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(&stubWrapper{repo: newStubAppRepo(googleApp())}, tt.hash)

			req := httptest.NewRequest(http.MethodGet, "/applications", nil)
			if tt.header != "" {
				req.Header.Set(apiKeyHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAPIKeyVerifier_UpStaysOpen(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	h := newTestServer(&stubWrapper{repo: newStubAppRepo()}, string(hash))

	rec := do(t, h, http.MethodGet, "/up", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
