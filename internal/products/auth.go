package products

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"ProductsAPI/pkg/kit"
)

const APIKeyHeader = "api-key"

type KeyVerifier interface {
	Verify(key string) bool
}

// StaticKey accepts exactly one plaintext secret.
type StaticKey struct {
	secret []byte
}

func NewStaticKey(secret string) *StaticKey {
	return &StaticKey{secret: []byte(secret)}
}

func (k *StaticKey) Verify(key string) bool {
	if key == "" || len(k.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), k.secret) == 1
}

// HashedKey accepts the secret whose bcrypt hash it holds. The first key that
// matches is remembered and later requests are compared against it directly.
type HashedKey struct {
	hash []byte

	mu       sync.RWMutex
	accepted []byte
}

func NewHashedKey(hash string) (*HashedKey, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("api key hash: %w", err)
	}
	return &HashedKey{hash: []byte(hash)}, nil
}

func (k *HashedKey) Verify(key string) bool {
	if key == "" {
		return false
	}

	k.mu.RLock()
	accepted := k.accepted
	k.mu.RUnlock()
	if accepted != nil {
		return subtle.ConstantTimeCompare([]byte(key), accepted) == 1
	}

	if bcrypt.CompareHashAndPassword(k.hash, []byte(key)) != nil {
		return false
	}

	k.mu.Lock()
	k.accepted = []byte(key)
	k.mu.Unlock()
	return true
}

// NewKeyVerifier prefers the bcrypt hash when one is configured.
func NewKeyVerifier(secret, hash string) (KeyVerifier, error) {
	if hash != "" {
		return NewHashedKey(hash)
	}
	return NewStaticKey(secret), nil
}

// RequireAPIKey rejects requests whose api-key header does not verify.
func RequireAPIKey(v KeyVerifier, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !v.Verify(r.Header.Get(APIKeyHeader)) {
				kit.WriteErr(w, r, log, ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
