package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

const UsernameKey contextKey = "username"

// TokenVerifier checks a bearer credential and resolves it to the identity it
// was issued for.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Authenticator is the guard in front of every protected route. A request
// with no credential is rejected as unauthenticated (401); a request whose
// credential fails verification is rejected as forbidden (403). It never
// mutates state beyond attaching the resolved identity to the context.
func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("missing authorization token"),
				)
				return
			}

			username, err := verifier.Verify(r.Context(), token)
			if err != nil {
				handleAuthError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractToken reads the Authorization header. Both "Bearer <token>" and a
// bare token are accepted; the browser client sends the raw token.
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}

	return strings.TrimSpace(authHeader)
}

func handleAuthError(w http.ResponseWriter, err error) {
	if core.IsAppError(err) {
		core.JSONError(w, err)
		return
	}

	switch {
	case errors.Is(err, core.ErrTokenExpired):
		core.JSONError(w, core.TokenExpiredError())
	default:
		core.JSONError(w, core.TokenInvalidError())
	}
}

func GetUsername(ctx context.Context) string {
	if username, ok := ctx.Value(UsernameKey).(string); ok {
		return username
	}
	return ""
}
