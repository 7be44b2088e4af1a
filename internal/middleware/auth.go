package middleware

import (
	"net/http"
	"strings"

	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/repositories"
	"github.com/anonto42/foodgram/backend/pkg/logger"
	"github.com/labstack/echo/v4"
)

// CurrentUserKey is the echo.Context key holding the authenticated *models.User.
const CurrentUserKey = "currentUser"

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(CurrentUserKey).(*models.User)
	return user
}

// Authenticate resolves the bearer token, if any, to a user. Requests without
// an Authorization header pass through as anonymous; a malformed or invalid
// token is rejected. Local JWTs are tried first, then Firebase ID tokens when
// firebase is non-nil.
func Authenticate(jwtSecret string, users repositories.UserRepository, firebase FirebaseTokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}
			tokenString := parts[1]
			ctx := c.Request().Context()

			var user *models.User
			claims, jwtErr := verifyJWT(jwtSecret, tokenString)
			switch {
			case jwtErr == nil:
				u, err := users.GetUserByID(ctx, claims.UserID)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
				}
				user = u
			case firebase != nil:
				uid, err := verifyFirebase(ctx, firebase, tokenString)
				if err != nil {
					logger.Debug().Err(err).Msg("Rejected bearer token")
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
				}
				u, err := users.GetUserByFirebaseUID(ctx, uid)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "No account is linked to this Firebase user")
				}
				user = u
			default:
				logger.Debug().Err(jwtErr).Msg("Rejected bearer token")
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(CurrentUserKey, user)
			return next(c)
		}
	}
}

// RequireAuth rejects anonymous requests. It must run after Authenticate.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication credentials were not provided")
		}
		return next(c)
	}
}

// RequireAdmin allows only administrators. It implies RequireAuth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		if !CurrentUser(c).IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to perform this action")
		}
		return next(c)
	})
}
