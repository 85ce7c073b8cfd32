package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/house-listing-api/internal/handler"    // import the handlers that implement route logic
	"github.com/iliyamo/house-listing-api/internal/middleware" // import middleware enforcing the admin session
)

// RegisterRoutes registers the whole API surface on the provided Echo
// instance. Read endpoints and the auth endpoints are public; every
// route that mutates listing state goes through RequireAdmin, so an
// unauthenticated request is rejected before a handler can touch the
// store. Unknown verbs on known paths get Echo's default 405.
func RegisterRoutes(e *echo.Echo, houses *handler.HouseHandler, auth *handler.AuthHandler, upload *handler.UploadHandler) {
	// Health check for load balancers and uptime monitors.
	e.GET("/api/health", handler.Health)

	// Auth endpoints. Login and check-auth are open to everyone;
	// logout works for guests too (it just clears nothing).
	e.POST("/api/login", auth.Login)
	e.POST("/api/logout", auth.Logout)
	e.GET("/api/check-auth", auth.CheckAuth)

	// Public read access to listings.
	e.GET("/api/houses", houses.List)
	e.GET("/api/houses/:id", houses.Get)

	// Admin-gated mutations. The group shares the /api prefix with the
	// public routes above but adds the RequireAdmin middleware.
	admin := e.Group("/api")
	admin.Use(middleware.RequireAdmin())
	admin.POST("/houses", houses.Create)
	admin.PUT("/houses/:id", houses.Update)
	admin.DELETE("/houses/:id", houses.Delete)
	admin.POST("/houses/:id/images", houses.AppendImages)
	admin.DELETE("/houses/:id/images/:imageIndex", houses.RemoveImage)
	admin.POST("/upload", upload.Upload)
}
