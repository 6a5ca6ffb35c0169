package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bookly-app/bookly-server/internal/logger"
	"github.com/bookly-app/bookly-server/internal/model"
)

// tokenKind selects which token type a guard variant requires.
type tokenKind int

const (
	kindAccess tokenKind = iota
	kindRefresh
)

// Authenticate validates bearer tokens against the codec and blocklist and
// injects the decoded claims into the request context.
type Authenticate struct {
	tokens         model.TokenManager
	blocklist      model.TokenBlocklist
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(
	tokens model.TokenManager,
	blocklist model.TokenBlocklist,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		tokens:         tokens,
		blocklist:      blocklist,
		contextManager: contextManager,
		logger:         logger,
	}
}

// RequireAccess guards routes that need a short-lived access token.
func (m *Authenticate) RequireAccess() gin.HandlerFunc {
	return m.guard(kindAccess)
}

// RequireRefresh guards routes that need a long-lived refresh token.
func (m *Authenticate) RequireRefresh() gin.HandlerFunc {
	return m.guard(kindRefresh)
}

// guard is the shared validation pipeline; the two exported variants differ
// only in the token-type predicate.
func (m *Authenticate) guard(kind tokenKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			abortWithError(c, http.StatusUnauthorized, "missing authorization credentials")
			return
		}

		claims, err := m.tokens.Decode(tokenString)
		if err != nil {
			abortWithError(c, http.StatusForbidden, model.ErrTokenInvalid.Error())
			return
		}

		revoked, err := m.blocklist.IsRevoked(c.Request.Context(), claims.JTI)
		if err != nil {
			m.logger.Error("failed to check token blocklist", "error", err.Error())
			abortWithError(c, http.StatusServiceUnavailable, model.ErrBlocklistUnavailable.Error())
			return
		}
		if revoked {
			abortWithError(c, http.StatusForbidden, model.ErrTokenRevoked.Error())
			return
		}

		switch kind {
		case kindAccess:
			if claims.Refresh {
				abortWithError(c, http.StatusForbidden, "provide access token")
				return
			}
		case kindRefresh:
			if !claims.Refresh {
				abortWithError(c, http.StatusForbidden, "provide refresh token")
				return
			}
		}

		ctx := m.contextManager.SetClaimsToContext(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header. Returns the
// empty string for a missing or malformed header.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return ""
	}
	return parts[1]
}

func abortWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"message": message})
}
