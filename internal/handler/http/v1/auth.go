package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_reporting_system/internal/auth"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

const actorContextKey = "actor"

// JWTAuthMiddleware - middleware аутентификации по JWT.
// Токен берётся из Authorization: Bearer, для EventSource допускается ?access_token=.
func JWTAuthMiddleware(verifier *auth.TokenVerifier, profiles service.ProfileService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
		if token == "" {
			token = c.Query("access_token")
		}

		if token == "" {
			log.Warn("Bearer token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "authentication_required",
				Message: "Authentication required",
			})
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			log.WithError(err).Warn("Invalid bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "authentication_required",
				Message: "Invalid or expired token",
			})
			return
		}

		actor, err := profiles.ResolveActor(c.Request.Context(), identity.UserID, identity.Email)
		if err != nil {
			log.WithError(err).Error("Failed to resolve actor profile")
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "internal_error",
				Message: "internal server error",
			})
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// actorFromContext возвращает пользователя запроса или nil
func actorFromContext(c *gin.Context) *models.Actor {
	value, ok := c.Get(actorContextKey)
	if !ok {
		return nil
	}
	actor, _ := value.(*models.Actor)
	return actor
}
