package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/house-listing-api/internal/config"
	"github.com/iliyamo/house-listing-api/internal/middleware"
	"github.com/iliyamo/house-listing-api/internal/session"
)

// AuthHandler bundles dependencies for the admin auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Sessions *session.Manager
}

func NewAuthHandler(cfg config.Config, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Sessions: sessions}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/login. Credentials are compared literally
// against the configured admin username and password; there is no
// hashing, lockout or rate limiting. On success an admin session is
// issued and its signed id is set as an HTTP-only cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "Invalid credentials"})
	}
	if req.Username != h.Cfg.AdminUsername || req.Password != h.Cfg.AdminPassword {
		// Failed logins leave no trace: no session is created and any
		// existing session is untouched.
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "Invalid credentials"})
	}
	_, token, err := h.Sessions.Issue(c.Request().Context(), true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create session"})
	}
	c.SetCookie(h.sessionCookie(token, h.Sessions.TTL()))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Logout handles POST /api/logout. It destroys the caller's session
// (if any) and expires the cookie. Logout always succeeds, even for
// guests.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid := middleware.SessionID(c); sid != "" {
		h.Sessions.Destroy(c.Request().Context(), sid)
	}
	c.SetCookie(h.sessionCookie("", -time.Hour)) // negative max-age clears the cookie
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// CheckAuth handles GET /api/check-auth and reports whether the caller
// currently holds an admin session. Guests get false, never an error.
func (h *AuthHandler) CheckAuth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"isAdmin": middleware.IsAdmin(c)})
}

// sessionCookie builds the session cookie. Secure is only set outside
// dev so local HTTP logins keep working.
func (h *AuthHandler) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.Cfg.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	}
}
