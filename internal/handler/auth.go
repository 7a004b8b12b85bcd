package handler

import (
	"context"      // provides context with cancellation for DB and mail calls
	"database/sql" // sentinel for missing rows
	"log"          // delivery failures are logged, never raised
	"net/http"     // HTTP status codes and cookie primitives
	"net/mail"     // address syntax check at signup
	"strings"      // string normalization
	"time"         // timeouts for DB calls and cookie expiry

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/food-recipe-finder/internal/config"     // app configuration
	"github.com/iliyamo/food-recipe-finder/internal/mailer"     // verification mail collaborator
	"github.com/iliyamo/food-recipe-finder/internal/repository" // DB repositories
	"github.com/iliyamo/food-recipe-finder/internal/session"    // browser session manager
	"github.com/iliyamo/food-recipe-finder/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for the signup/login/verify endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Sessions *session.Manager
	Mail     mailer.Mailer
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, s *session.Manager, m mailer.Mailer) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Sessions: s, Mail: m}
}

// ShowSignup renders the signup form.
func (h *AuthHandler) ShowSignup(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", echo.Map{"Flash": popFlash(c)})
}

// Signup: create an unverified account with a fresh token and attempt to
// deliver the verification link. The account row is committed before the
// mail attempt, so a delivery failure never rolls the signup back; the
// user is told to get the link re-sent out-of-band instead.
func (h *AuthHandler) Signup(c echo.Context) error {
	username := strings.ToLower(strings.TrimSpace(c.FormValue("username")))
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")

	if username == "" || email == "" || password == "" {
		setFlash(c, "Username, email and password are required.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		setFlash(c, "That email address does not look valid.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	hash, err := utils.HashPassword(password, h.Cfg.BcryptCost)
	if err != nil {
		setFlash(c, "Signup failed, please try again.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}
	token, err := utils.NewVerificationToken()
	if err != nil {
		setFlash(c, "Signup failed, please try again.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.Create(ctx, username, email, hash, token); err != nil {
		switch err {
		case repository.ErrUsernameExists:
			setFlash(c, "That username is already taken.")
		case repository.ErrEmailExists:
			setFlash(c, "That email is already registered.")
		default:
			setFlash(c, "Signup failed, please try again.")
		}
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	// Best-effort delivery: the account exists either way.
	if err := h.Mail.SendVerification(ctx, email, token); err != nil {
		log.Printf("mailer: verification delivery to %s failed: %v", email, err)
		setFlash(c, "Account created, but the verification email could not be sent. Please contact support.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	setFlash(c, "Account created. Check your email for the verification link.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{"Flash": popFlash(c)})
}

// Login: verify credentials and establish a session. Unverified accounts
// are refused here even with a correct password; this guard runs at login
// time only, established sessions are never re-checked.
func (h *AuthHandler) Login(c echo.Context) error {
	username := strings.ToLower(strings.TrimSpace(c.FormValue("username")))
	password := c.FormValue("password")
	if username == "" || password == "" {
		setFlash(c, "Username and password are required.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, username)
	if err != nil {
		if err == sql.ErrNoRows {
			setFlash(c, "Invalid username or password.")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		setFlash(c, "Login failed, please try again.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		setFlash(c, "Invalid username or password.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if !u.IsVerified {
		setFlash(c, "Please verify your email before logging in.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	cookieValue, err := h.Sessions.Issue(ctx, u.ID, u.Username)
	if err != nil {
		setFlash(c, "Login failed, please try again.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    cookieValue,
		Path:     "/",
		MaxAge:   int(h.Sessions.TTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout revokes the server-side session record and expires the cookie.
// Safe to call without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		if err := h.Sessions.Revoke(ctx, cookie.Value); err != nil {
			log.Printf("session: revoke failed: %v", err)
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	setFlash(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// Verify consumes a verification token from the emailed link. The store
// flips the account to verified and clears the token atomically, so the
// second visit with the same link lands in the invalid branch.
func (h *AuthHandler) Verify(c echo.Context) error {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		setFlash(c, "Invalid or expired verification link.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.ConsumeToken(ctx, token)
	if err != nil {
		if err == repository.ErrTokenInvalid {
			setFlash(c, "Invalid or expired verification link.")
		} else {
			setFlash(c, "Verification failed, please try again.")
		}
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	log.Printf("auth: account %s verified", u.Username)
	setFlash(c, "Email verified. You can now log in.")
	return c.Redirect(http.StatusSeeOther, "/login")
}
