package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agrover-luv/SlashAlert-API/pkg/googleauth"
	"github.com/agrover-luv/SlashAlert-API/pkg/logger"
	"github.com/agrover-luv/SlashAlert-API/prometheus"
)

// AuthMiddleware validates the Google ID token and extracts the caller
// identity. The verified email doubles as the tenant: every record the
// caller touches is scoped to it.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromEcho(c)

		prometheus.AuthAttemptsCounter.Inc()

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		// Validate the token
		claims, err := googleauth.ValidateToken(parts[1])
		if err != nil {
			log.Error("Invalid ID token", zap.Error(err))
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		prometheus.AuthSuccessCounter.Inc()

		// Store caller identity in context for later use
		c.Set("email", claims.Email)
		c.Set("sub", claims.Subject)
		c.Set("claims", claims)

		log.Info("Request authenticated",
			zap.String("email", claims.Email))

		return next(c)
	}
}

// TenantEmail retrieves the authenticated caller's email from the
// context. Returns "", false when the request never passed auth.
func TenantEmail(c echo.Context) (string, bool) {
	email, ok := c.Get("email").(string)
	if !ok || email == "" {
		prometheus.TenantContextMissingCounter.Inc()
		return "", false
	}
	return email, true
}
