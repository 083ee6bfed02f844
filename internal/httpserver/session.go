// internal/httpserver/session.go
//
// Session tokens for the play API. A token is an HS256 JWT carrying the
// game ID; it is minted by /game/new and required by the guess/resign
// endpoints. No user accounts: the token itself is the capability.

package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lexiconlab/wordle-cli/internal/game"
)

// ctxGameKey is the context key type for storing the session's game.
type ctxGameKey struct{}

// sessionTTL bounds how long a minted token stays valid.
const sessionTTL = 24 * time.Hour

// signSession creates a token bound to one game ID.
func (s *Server) signSession(gameID string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": gameID,
		"exp": time.Now().Add(sessionTTL).Unix(),
		"iat": time.Now().Unix(),
	})
	return t.SignedString(s.secret)
}

// requireSession enforces a valid session token and injects the
// referenced game into the request context.
func (s *Server) requireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return s.secret, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			gid, _ := claims["gid"].(string)
			if gid == "" {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			// Token may outlive the in-memory session (e.g. restart).
			g, err := s.sess.Get(r.Context(), gid)
			if err != nil {
				http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
				return
			}
			ctx := context.WithValue(r.Context(), ctxGameKey{}, g)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionGame pulls the authenticated game out of the request context.
func sessionGame(r *http.Request) *game.Game {
	g, _ := r.Context().Value(ctxGameKey{}).(*game.Game)
	return g
}

// bearerToken extracts a bearer token from the Authorization header.
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
