package middleware

import (
	"errors"
	"net/http"
	"quill/internal/core"
	"strings"

	"go.uber.org/zap"
)

const (
	AuthCookieName  = "auth_token"
	AccessDeniedMsg = "Access denied!"

	bearerPrefix = "Bearer "
)

var ErrUnauthorized error = errors.New("unauthorized")

type IdentityResolver interface {
	ResolveIdentity(token string) (core.Identity, bool)
}

// IdentityHandlerFunc receives the identity resolved for the request. ok is
// false for anonymous requests.
type IdentityHandlerFunc func(w http.ResponseWriter, r *http.Request, id core.Identity, ok bool)

// ProtectedHandlerFunc only runs for requests carrying a verified identity.
type ProtectedHandlerFunc func(w http.ResponseWriter, r *http.Request, id core.Identity)

// ResolveIdentity reads the token from the Authorization header, falling back
// to the auth cookie. Missing or unverifiable tokens yield false.
func ResolveIdentity(r *http.Request, resolver IdentityResolver) (core.Identity, bool) {
	token := bearerToken(r)
	if token == "" {
		if cookie, err := r.Cookie(AuthCookieName); err == nil {
			token = cookie.Value
		}
	}
	if token == "" {
		return core.Identity{}, false
	}

	return resolver.ResolveIdentity(token)
}

func RequireIdentity(id core.Identity, ok bool) (core.Identity, error) {
	if !ok {
		return core.Identity{}, ErrUnauthorized
	}
	return id, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

type AuthGate struct {
	logs     *zap.SugaredLogger
	resolver IdentityResolver
}

func NewAuthGate(logger *zap.SugaredLogger, resolver IdentityResolver) *AuthGate {
	return &AuthGate{
		logs:     logger,
		resolver: resolver,
	}
}

// Optional resolves the identity and hands it to next without rejecting
// anonymous requests.
func (g *AuthGate) Optional(next IdentityHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ResolveIdentity(r, g.resolver)
		next(w, r, id, ok)
	}
}

// Required answers 401 with a fixed message unless the request carries a
// verified identity.
func (g *AuthGate) Required(next ProtectedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := RequireIdentity(ResolveIdentity(r, g.resolver))
		if err != nil {
			g.logs.Infow("access denied",
				"path", r.URL.Path,
				"request_id", GetRequestID(r))
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(AccessDeniedMsg))
			return
		}
		next(w, r, id)
	}
}
