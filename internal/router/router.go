package router // package router defines how HTTP routes are registered for the application

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/food-recipe-finder/internal/handler"    // import the handlers that implement the flows
	"github.com/iliyamo/food-recipe-finder/internal/middleware" // import middleware for session authentication
	"github.com/iliyamo/food-recipe-finder/internal/session"    // session manager used by the guard
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the account routes: signup, login, logout and
// email verification.  None of them require an existing session; logout
// simply does nothing when called anonymously.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	// Signup renders a form on GET and creates the unverified account plus
	// verification token on POST.
	e.GET("/signup", a.ShowSignup)
	e.POST("/signup", a.Signup)
	// Login renders a form on GET and establishes the session on POST.
	// The verified-account guard lives inside the POST handler.
	e.GET("/login", a.ShowLogin)
	e.POST("/login", a.Login)
	// Logout revokes the session record and expires the cookie.
	e.GET("/logout", a.Logout)
	// Verification links from email land here; the token is consumed
	// exactly once.
	e.GET("/verify/:token", a.Verify)
}

// RegisterUpload registers the protected upload surface under the session
// guard.  The middleware redirects anonymous requests to /login before
// the handlers run, so neither the classifier nor the upload directory is
// ever touched by an unauthenticated request.
func RegisterUpload(e *echo.Echo, u *handler.UploadHandler, mgr *session.Manager, uploadDir string) {
	// Serve stored uploads so the result page can display the image.
	e.Static("/static/uploads", uploadDir)

	protected := e.Group("")
	// Apply the session middleware to everything in the group.
	protected.Use(middleware.RequireSession(mgr))
	// Upload form and classification result.
	protected.GET("/", u.Index)
	protected.POST("/", u.Upload)
}
