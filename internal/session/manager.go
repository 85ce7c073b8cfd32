package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie under which the signed session token travels.
const CookieName = "session"

// Manager ties together the session store and the cookie token codec.
// Handlers use it to issue admin sessions on login, destroy them on
// logout and resolve incoming cookies back into session state.
type Manager struct {
	store  Store
	secret string
	ttl    time.Duration
}

// NewManager returns a manager signing cookies with secret and keeping
// sessions alive for ttl.
func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: secret, ttl: ttl}
}

// TTL reports the configured session lifetime, used for cookie max-age.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue creates a fresh admin session and returns its id together with
// the signed cookie token the client should present on later requests.
func (m *Manager) Issue(ctx context.Context, isAdmin bool) (sid, token string, err error) {
	sid = uuid.NewString()
	if err = m.store.Put(ctx, sid, Session{IsAdmin: isAdmin, CreatedAt: time.Now().UTC()}); err != nil {
		return "", "", err
	}
	token, err = SignSessionID(m.secret, sid, m.ttl)
	if err != nil {
		// Roll back the orphaned entry; the client never learns this id.
		_ = m.store.Delete(ctx, sid)
		return "", "", err
	}
	return sid, token, nil
}

// Resolve verifies a cookie token and loads the referenced session.
// Any failure along the way (bad signature, expired token, unknown or
// expired id) reports ok=false, which callers treat as a guest.
func (m *Manager) Resolve(ctx context.Context, token string) (sid string, sess Session, ok bool) {
	sid, err := ParseSessionID(m.secret, token)
	if err != nil {
		return "", Session{}, false
	}
	sess, ok = m.store.Get(ctx, sid)
	return sid, sess, ok
}

// Destroy drops the session unconditionally. Destroying an unknown or
// already-expired session is not an error; logout always succeeds.
func (m *Manager) Destroy(ctx context.Context, sid string) {
	_ = m.store.Delete(ctx, sid)
}
