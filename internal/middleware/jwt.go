package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// SessionAuth returns an Echo middleware that validates the session JWT
// issued at login and injects its claims into the request context.  The
// token travels either as a Bearer Authorization header or in the
// "session" cookie, so both API clients and browsers are covered.
// Handlers behind this middleware can read `c.Get("user_id")`,
// `c.Get("role")` and `c.Get("backend_token")`; the backend token is what
// gets forwarded on authenticated calls to the remote cinema API.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := ""
			// Prefer the Authorization header; fall back to the cookie set
			// by the login handler.
			if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				raw = strings.TrimPrefix(auth, "Bearer ")
			} else if cookie, err := c.Cookie("session"); err == nil {
				raw = cookie.Value
			}
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing session token"})
			}

			// Parse with HS256 and our secret; any other signing method is
			// rejected.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session token"})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			// Expose the claims handlers need.  Type assertions are left to
			// downstream consumers.
			c.Set("user_id", claims["sub"])
			c.Set("user_name", claims["name"])
			c.Set("role", claims["role"])
			if btok, ok := claims["btok"].(string); ok {
				c.Set("backend_token", btok)
			}
			return next(c)
		}
	}
}
