// Package session implements cookie-correlated admin sessions. A
// session is identified by a random id stored server-side; the id
// travels to the client inside a signed cookie token so it cannot be
// forged or tampered with. The flag carried by a session is a single
// boolean: whether the caller has authenticated as the admin.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/redis/go-redis/v9"
)

// Session is the per-caller state persisted between requests. Callers
// that never logged in have no session at all and are treated as
// IsAdmin=false.
type Session struct {
	IsAdmin   bool      `json:"isAdmin"`   // admin flag set by a successful login
	CreatedAt time.Time `json:"createdAt"` // when the session was issued
}

// Store persists sessions keyed by session id. Entries expire after
// the TTL configured at construction; an expired or unknown id reads
// back as absent. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the session for the given id, reporting whether it exists.
	Get(ctx context.Context, sid string) (Session, bool)
	// Put stores or replaces the session under the given id.
	Put(ctx context.Context, sid string, sess Session) error
	// Delete removes the session. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, sid string) error
}

// MemoryStore keeps sessions in an in-process TTL cache. This is the
// default backend; sessions are lost on restart, which matches the
// rest of the service's ephemeral state.
type MemoryStore struct {
	cache *ttlcache.Cache[string, Session]
}

// NewMemoryStore returns a memory-backed store whose entries expire
// after ttl. Hits do not extend a session's lifetime; the cookie and
// the server-side entry age out together.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	c := ttlcache.New(
		ttlcache.WithTTL[string, Session](ttl),
		ttlcache.WithDisableTouchOnHit[string, Session](),
	)
	go c.Start() // background eviction of expired entries
	return &MemoryStore{cache: c}
}

func (m *MemoryStore) Get(_ context.Context, sid string) (Session, bool) {
	item := m.cache.Get(sid)
	if item == nil {
		return Session{}, false
	}
	return item.Value(), true
}

func (m *MemoryStore) Put(_ context.Context, sid string, sess Session) error {
	m.cache.Set(sid, sess, ttlcache.DefaultTTL)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sid string) error {
	m.cache.Delete(sid)
	return nil
}

// RedisStore keeps sessions in Redis so that admin logins survive a
// process restart or are shared between replicas. Values are stored as
// JSON under "session:<id>" with the configured TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an already-connected Redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) key(sid string) string { return "session:" + sid }

func (r *RedisStore) Get(ctx context.Context, sid string) (Session, bool) {
	raw, err := r.client.Get(ctx, r.key(sid)).Bytes()
	if err != nil {
		// redis.Nil and transport errors both read as "no session";
		// the caller simply sees an unauthenticated request.
		return Session{}, false
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return Session{}, false
	}
	return sess, true
}

func (r *RedisStore) Put(ctx context.Context, sid string, sess Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(sid), raw, r.ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, sid string) error {
	return r.client.Del(ctx, r.key(sid)).Err()
}
