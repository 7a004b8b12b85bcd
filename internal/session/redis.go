package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/food-recipe-finder/internal/model"
)

const keyPrefix = "sess:"

// RedisStore keeps session records in Redis with the configured TTL as
// the expiry policy.  Records are stored as JSON under "sess:<id>".
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Create writes the record with the store TTL.  Redis expires the key on
// its own; no sweeper is needed.
func (s *RedisStore) Create(ctx context.Context, sid string, sess model.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.SetEx(ctx, keyPrefix+sid, b, s.ttl).Err()
}

// Get loads a record.  A missing or expired key maps to ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, sid string) (model.Session, error) {
	b, err := s.rdb.Get(ctx, keyPrefix+sid).Bytes()
	if err != nil {
		if err == redis.Nil {
			return model.Session{}, ErrNotFound
		}
		return model.Session{}, err
	}
	var sess model.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

// Delete removes the record.  Deleting an absent key is not an error, so
// logout stays idempotent.
func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, keyPrefix+sid).Err()
}
