package model

// Session is the server-side record behind an authenticated browser
// session.  Only the session ID travels to the client (inside a signed
// cookie); the identity it proves lives in the session store under that
// ID until logout or expiry.
//
// Fields:
//  UserID   – the account the session is bound to.
//  Username – login name cached for display without a DB round trip.
type Session struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
}
