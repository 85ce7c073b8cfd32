package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireAdmin returns a middleware function that enforces that the
// caller holds an authenticated admin session. Every mutating house
// route is wrapped in it. It assumes ResolveSession ran earlier in
// the chain and stored the admin flag in the context; if the flag is
// missing or false the request is aborted with 401 Unauthorized and
// the handler never runs, so a rejected request can never leave a
// partial mutation behind. There is no lockout or rate limiting:
// every request is judged on its session alone.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsAdmin(c) {
				// Guests and non-admin sessions get the same answer.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Admin access required"})
			}
			// Otherwise call the next handler in the chain.
			return next(c)
		}
	}
}
