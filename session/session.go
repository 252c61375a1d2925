// Package session keeps per-client server-side state: the authenticated
// identity and the shopping cart. The client holds only an opaque session id
// in a cookie.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"roll-point/models"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Session is the state behind one cookie. A zero Session is a valid
// anonymous session with an empty cart.
type Session struct {
	Email string      `json:"email,omitempty"`
	Name  string      `json:"name,omitempty"`
	Cart  models.Cart `json:"cart"`
}

// LoggedIn reports whether the session carries an authenticated identity.
func (s *Session) LoggedIn() bool { return s.Email != "" }

// Store persists sessions keyed by their cookie id. Get returns a fresh
// empty session for unknown ids.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, id string, s *Session) error
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps sessions as JSON values with a TTL refreshed on save.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, id string, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+id, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
