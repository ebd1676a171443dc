package http

import (
	"errors"
	"net/http"
	"strings"

	"deliverylink/internal/core/domain/model/kernel"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Actor is the authenticated caller extracted from the bearer token.
// The subject claim carries the actor's UUID and the role claim says
// which side of the marketplace they act for.
type Actor struct {
	ID   kernel.UUID
	Role string // "customer" | "business" | "driver" | "admin"
}

const actorContextKey = "actor"

// ActorAuth returns an echo middleware that validates the Authorization
// bearer JWT and stores the resulting Actor on the request context.
// Tokens are HMAC-signed; any other signing method is rejected.
func ActorAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := parseActor(c.Request().Header.Get(echo.HeaderAuthorization), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or missing credentials",
				})
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// actorFrom retrieves the authenticated actor placed by ActorAuth.
func actorFrom(c echo.Context) (Actor, bool) {
	actor, ok := c.Get(actorContextKey).(Actor)
	return actor, ok
}

type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func parseActor(header, secret string) (Actor, error) {
	if secret == "" {
		return Actor{}, errors.New("jwt secret is empty")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Actor{}, errors.New("invalid authorization header")
	}
	tokenStr := strings.TrimSpace(parts[1])

	tok, err := jwt.ParseWithClaims(tokenStr, &actorClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return Actor{}, err
	}

	claims, _ := tok.Claims.(*actorClaims)
	if claims == nil || claims.Subject == "" {
		return Actor{}, errors.New("invalid claims")
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Actor{}, err
	}

	role := strings.ToLower(claims.Role)
	if role == "" {
		return Actor{}, errors.New("missing role claim")
	}

	return Actor{ID: id, Role: role}, nil
}
