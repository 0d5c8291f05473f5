// Package session keeps server-side login sessions in Redis.
//
// The client holds an opaque random identifier in a cookie. Redis only ever
// sees its SHA-256 digest as the key, so a dump of the store cannot be replayed
// as cookies.
package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

const (
	keyPrefix = "session:"
	idBytes   = 32
)

// Store creates, resolves and destroys sessions.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a Store whose sessions expire ttl after creation.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// TTL is the lifetime of new sessions.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create binds ref to a fresh session id and returns that id.
func (s *Store) Create(ctx context.Context, ref models.SessionRef) (string, error) {
	const op = "session.Create"

	id, err := newID()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	data, err := json.Marshal(ref)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err = s.rdb.Set(ctx, key(id), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Get resolves a session id. An unknown or expired id yields found == false and
// no error; only store failures are errors.
func (s *Store) Get(ctx context.Context, id string) (*models.SessionRef, bool, error) {
	const op = "session.Get"
	if id == "" {
		return nil, false, nil
	}

	val, err := s.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	var ref models.SessionRef
	if err = json.Unmarshal(val, &ref); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return &ref, true, nil
}

// Destroy removes a session. Destroying an unknown id is not an error.
func (s *Store) Destroy(ctx context.Context, id string) error {
	const op = "session.Destroy"
	if id == "" {
		return nil
	}
	if err := s.rdb.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func newID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func key(id string) string {
	sum := sha256.Sum256([]byte(id))
	return keyPrefix + hex.EncodeToString(sum[:])
}
