package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
	"github.com/oksasatya/go-social-network/pkg/helpers"
	"github.com/oksasatya/go-social-network/pkg/response"
)

// TokenHeader carries the bearer token on private routes.
const TokenHeader = "x-auth-token"

const (
	msgNoToken      = "No Token provided, Authentication Denied"
	msgInvalidToken = "Invalid Token, Authentication Denied"
)

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity the Auth Gate attached to ctx.
func IdentityFrom(ctx context.Context) (entity.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(entity.Identity)
	return id, ok
}

// Auth verifies x-auth-token and attaches the caller's identity to the request
// context. With a denylist configured, revoked tokens are rejected too; a
// denylist outage is logged and does not lock everyone out.
func Auth(jwt *helpers.JWTManager, denylist repo.TokenDenylist, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, msgNoToken)
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		if denylist != nil && claims.ID != "" {
			revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				helpers.LogWarn(logger, "token denylist lookup failed", err, logrus.Fields{"user_id": claims.UserID})
			} else if revoked {
				response.Abort(c, http.StatusUnauthorized, msgInvalidToken)
				return
			}
		}

		id := entity.Identity{
			UserID:   claims.UserID,
			UserName: claims.UserName,
			TokenID:  claims.ID,
		}
		if claims.ExpiresAt != nil {
			id.ExpiresAt = claims.ExpiresAt.Time
		}
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}
