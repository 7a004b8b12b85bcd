// Package repository defines error types that are reused across the
// storage layer. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrUsernameExists and ErrEmailExists indicate a signup
// conflict on one of the unique columns, while ErrTokenInvalid
// signals that a verification token was never issued or has already
// been consumed.
package repository

import "errors"

// ErrUsernameExists is returned when an insert collides with the
// unique username constraint. Handlers should flash a conflict
// message and leave the store untouched.
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned when an insert collides with the
// unique email constraint.
var ErrEmailExists = errors.New("email already exists")

// ErrTokenInvalid is returned when a verification token does not
// match any pending account. Consumed tokens are cleared from the
// row, so a second consume of the same token also reports this
// error.
var ErrTokenInvalid = errors.New("invalid or expired token")
