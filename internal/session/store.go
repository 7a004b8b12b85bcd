// Package session implements server-side browser sessions.  A session is
// a short record {user_id, username} held in a store under a random ID;
// the client only ever holds a signed cookie naming that ID.  Deleting
// the record is what makes logout effective: a cookie whose ID no longer
// resolves is treated the same as no cookie at all.
package session

import (
	"context"
	"errors"

	"github.com/iliyamo/food-recipe-finder/internal/model"
)

// ErrNotFound is returned when a session ID does not resolve to a live
// record, either because it never existed, was deleted on logout, or
// expired out of the store.
var ErrNotFound = errors.New("session not found")

// Store persists session records for their lifetime.  Implementations
// own the expiry policy: the Redis store leans on key TTLs, the memory
// store sweeps on access.
type Store interface {
	Create(ctx context.Context, sid string, s model.Session) error
	Get(ctx context.Context, sid string) (model.Session, error)
	Delete(ctx context.Context, sid string) error
}
