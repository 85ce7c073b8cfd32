package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/house-listing-api/internal/session" // session manager resolving cookie tokens
)

// Context keys under which session state is exposed to handlers.
const (
	CtxSessionID = "session_id" // the resolved session id, absent for guests
	CtxIsAdmin   = "is_admin"   // bool admin flag, absent or false for guests
)

// ResolveSession returns an Echo middleware that reads the session
// cookie, verifies its signature and loads the referenced session from
// the store. On success the session id and admin flag are injected
// into the request context via `c.Set`, where handlers and the
// RequireAdmin middleware pick them up. A missing, tampered or expired
// cookie is not an error: the request simply proceeds as a guest with
// no session values set.
func ResolveSession(mgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Read the session cookie. Guests have none.
			cookie, err := c.Cookie(session.CookieName)
			if err == nil && cookie.Value != "" {
				// Resolve verifies the HMAC signature and looks up the
				// server-side entry; both must succeed for the request
				// to carry session state.
				if sid, sess, ok := mgr.Resolve(c.Request().Context(), cookie.Value); ok {
					c.Set(CtxSessionID, sid)
					c.Set(CtxIsAdmin, sess.IsAdmin)
				}
			}
			return next(c)
		}
	}
}

// IsAdmin reports whether the current request carries an admin session.
// It defaults to false for guests and for sessions that were issued
// without the admin flag.
func IsAdmin(c echo.Context) bool {
	v, ok := c.Get(CtxIsAdmin).(bool)
	return ok && v
}

// SessionID returns the resolved session id, or "" for guests.
func SessionID(c echo.Context) string {
	v, _ := c.Get(CtxSessionID).(string)
	return v
}
