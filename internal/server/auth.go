package server

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

const apiKeyHeader = "X-API-Key"

// apiKeyVerifier lets a request through when no api key is configured or
// when the X-API-Key header matches the configured bcrypt hash.
func (s *server) apiKeyVerifier(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKeyHash == "" {
			next.ServeHTTP(w, r)
			return
		}
		apiKey := r.Header.Get(apiKeyHeader)
		if apiKey == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		err := bcrypt.CompareHashAndPassword([]byte(s.apiKeyHash), []byte(apiKey))
		if err != nil {
			s.logger.Warn("invalid api key", "path", r.URL.Path)
			http.Error(w, "invalid api key", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
