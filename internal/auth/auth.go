// Package auth gates the API behind a single owner token. The server stores
// only a bcrypt hash of the token; the plaintext lives with the operator.
package auth

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Service verifies bearer tokens against the configured hash.
type Service struct {
	tokenHash []byte
}

func NewService(tokenHash string) *Service {
	return &Service{tokenHash: []byte(tokenHash)}
}

// RequireToken rejects requests without a valid Authorization: Bearer token.
func (s *Service) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", `Bearer realm="hostledger"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if err := bcrypt.CompareHashAndPassword(s.tokenHash, []byte(token)); err != nil {
			w.Header().Set("WWW-Authenticate", `Bearer realm="hostledger"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
