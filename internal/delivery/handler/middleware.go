package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
	"post-service/internal/domain/entities"
	"post-service/internal/domain/repositories"
	"post-service/internal/infrastructure/auth"
)

// sessionUserKey is the echo context key the session middleware stores the
// resolved user under. The user lives for the single request only.
const sessionUserKey = "session_user"

// Session resolves the Authorization bearer token into a local user and puts
// it on the request context. A missing header passes through unauthenticated;
// a present but invalid token is rejected outright. The local user row is
// provisioned on first sign-in.
func Session(resolver *auth.SessionResolver, userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
			}

			profile, err := resolver.Resolve(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			candidate, err := entities.NewValidatedUser(entities.NewUser(profile.Email, profile.Name, profile.Image))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := userRepo.FindOrCreateByEmail(c.Request().Context(), candidate)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}

			c.Set(sessionUserKey, user)
			return next(c)
		}
	}
}

// sessionUser returns the user the session middleware resolved, or nil.
func sessionUser(c echo.Context) *entities.User {
	user, _ := c.Get(sessionUserKey).(*entities.User)
	return user
}

// RequestThrottle applies a process-wide token bucket to every request.
func RequestThrottle(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
