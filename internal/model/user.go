package model

import "time"

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. The json tags are omitted here because these structs
// are primarily used internally by the repository layer; handlers
// render HTML templates and never serialize accounts directly.
//
// VerificationToken is a pointer because the column is nullable:
// it carries the pending single-use token while the account is
// unverified and becomes NULL the moment the token is consumed.
// A consumed token is therefore indistinguishable from one that
// was never issued.
//
// Fields:
//  ID                – primary key identifier of the user.
//  Username          – unique login name, immutable after signup.
//  Email             – unique email address used for verification delivery.
//  PasswordHash      – bcrypt hashed password; plaintext is never stored.
//  VerificationToken – pending email verification token (nil once verified).
//  IsVerified        – whether the email address has been confirmed.
//  CreatedAt         – timestamp of creation.
//  UpdatedAt         – timestamp of last update.
type User struct {
	ID                uint64    // users.id
	Username          string    // users.username
	Email             string    // users.email
	PasswordHash      string    // users.password_hash
	VerificationToken *string   // users.verification_token (nullable)
	IsVerified        bool      // users.is_verified
	CreatedAt         time.Time // users.created_at
	UpdatedAt         time.Time // users.updated_at
}
