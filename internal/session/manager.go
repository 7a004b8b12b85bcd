package session // session manager: binds signed cookies to store records

import (
	"context" // context for store calls
	"errors"  // sentinel errors for cookie validation
	"time"    // expiry calculation

	"github.com/golang-jwt/jwt/v5" // JWT library for signing the session cookie

	"github.com/iliyamo/food-recipe-finder/internal/model"
	"github.com/iliyamo/food-recipe-finder/internal/utils"
)

// CookieName is the browser cookie carrying the signed session token.
const CookieName = "session_token"

// ErrInvalidCookie is returned when the session cookie fails signature or
// claim validation.  Callers treat it exactly like an absent session.
var ErrInvalidCookie = errors.New("invalid session cookie")

// Manager issues and resolves browser sessions.  The cookie value is an
// HS256 JWT carrying the session ID (sid), user ID (sub) and username;
// the signature stops clients from minting their own IDs, the store
// lookup stops a signed-but-revoked cookie from resurrecting a session
// after logout.
type Manager struct {
	Store  Store         // server-side session records
	Secret string        // HMAC secret for the cookie JWT
	TTL    time.Duration // session lifetime
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{Store: store, Secret: secret, TTL: ttl}
}

// Issue creates a session record for the user and returns the signed
// cookie value.  The JWT exp claim mirrors the store TTL so both sides
// of the session expire together.
func (m *Manager) Issue(ctx context.Context, userID uint64, username string) (string, error) {
	sid, err := utils.NewSessionID()
	if err != nil {
		return "", err
	}
	if err := m.Store.Create(ctx, sid, model.Session{UserID: userID, Username: username}); err != nil {
		return "", err
	}
	exp := time.Now().UTC().Add(m.TTL)
	claims := jwt.MapClaims{
		"sid":      sid,
		"sub":      userID,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(m.Secret))
}

// Resolve validates a cookie value and returns the live session it names.
// Any failure (bad signature, wrong algorithm, expired claim, missing
// store record) collapses to ErrInvalidCookie or ErrNotFound; callers
// redirect to login in both cases.
func (m *Manager) Resolve(ctx context.Context, cookieValue string) (model.Session, error) {
	sid, err := m.parseSID(cookieValue)
	if err != nil {
		return model.Session{}, err
	}
	return m.Store.Get(ctx, sid)
}

// Revoke deletes the store record behind a cookie value.  An invalid
// cookie is silently ignored: there is nothing to revoke.
func (m *Manager) Revoke(ctx context.Context, cookieValue string) error {
	sid, err := m.parseSID(cookieValue)
	if err != nil {
		return nil
	}
	return m.Store.Delete(ctx, sid)
}

// parseSID verifies the JWT and extracts the sid claim.
func (m *Manager) parseSID(cookieValue string) (string, error) {
	tok, err := jwt.Parse(cookieValue, func(t *jwt.Token) (interface{}, error) {
		// Type assert the signing method to HMAC; reject others.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCookie
		}
		return []byte(m.Secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidCookie
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCookie
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidCookie
	}
	return sid, nil
}
