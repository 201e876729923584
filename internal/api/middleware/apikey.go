package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"os"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/papertrade/dashboard-backend/internal/api/response"
)

// timeTokenTTL bounds how long a generated time token stays valid.
const timeTokenTTL = 5 * time.Minute

// fernetKey derives a fernet key from the shared API key.
func fernetKey(apiKey string) *fernet.Key {
	sum := sha256.Sum256([]byte(apiKey))
	var key fernet.Key
	copy(key[:], sum[:])
	return &key
}

// GenerateTimeToken produces a short-lived token bound to the API key,
// to be sent in the X-Time-Token header alongside X-API-Key.
func GenerateTimeToken(apiKey string) string {
	token, err := fernet.EncryptAndSign([]byte(time.Now().UTC().Format(time.RFC3339)), fernetKey(apiKey))
	if err != nil {
		return ""
	}
	return string(token)
}

// APIKeyMiddleware protects internal endpoints. Requests must carry the
// shared key in X-API-Key and a non-expired fernet time token in
// X-Time-Token. The key is read from the INTERNAL_API_KEY environment
// variable on each request so tests can swap it.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("INTERNAL_API_KEY")
		if expected == "" {
			response.RespondError(w, http.StatusInternalServerError, "authentication failed", "Authentication not loaded")
			return
		}

		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		timeToken := r.Header.Get("X-Time-Token")
		if timeToken == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing Time token")
			return
		}
		if fernet.VerifyAndDecrypt([]byte(timeToken), timeTokenTTL, []*fernet.Key{fernetKey(expected)}) == nil {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Time token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}
