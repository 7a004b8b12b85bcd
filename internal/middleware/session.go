package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for the redirect

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/food-recipe-finder/internal/session"
)

// RequireSession returns an Echo middleware that resolves the session
// cookie and injects the authenticated identity into the request context.
// Handlers behind it can read `c.Get("user_id")` and `c.Get("username")`.
// Whenever the cookie is missing, forged, expired or revoked, the request
// is redirected to the login page before the protected handler runs, so
// no side effect can happen on the protected resource.
func RequireSession(mgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			sess, err := mgr.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				// Invalid and revoked cookies are treated identically to an
				// anonymous request.
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			c.Set("user_id", sess.UserID)
			c.Set("username", sess.Username)
			return next(c)
		}
	}
}
