// Package app assembles the service: configuration, the in-memory
// house store, the session layer, upload storage, handlers and routes
// on a single Echo instance. Both transports (the standalone server in
// cmd/server and the serverless entrypoint in api/) build the exact
// same application through New, so route logic exists once.
package app

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/house-listing-api/internal/config"
	"github.com/iliyamo/house-listing-api/internal/handler"
	"github.com/iliyamo/house-listing-api/internal/middleware"
	"github.com/iliyamo/house-listing-api/internal/router"
	"github.com/iliyamo/house-listing-api/internal/session"
	"github.com/iliyamo/house-listing-api/internal/storage"
	"github.com/iliyamo/house-listing-api/internal/store"
)

// New builds a ready-to-serve Echo instance from configuration. The
// house store starts empty on every call; all listing state lives in
// this process and dies with it.
func New(ctx context.Context, cfg config.Config) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// Ambient middleware: request logging, panic recovery and CORS
	// with credentials so the session cookie crosses origins.
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// Session backend: Redis when requested and reachable, otherwise
	// the in-process TTL cache. Falling back keeps local development
	// working with no Redis around.
	var sessions session.Store
	if cfg.SessionStore == "redis" {
		if client := config.NewRedisClient(); client != nil {
			sessions = session.NewRedisStore(client, cfg.SessionTTL)
		} else {
			log.Printf("redis unavailable, falling back to in-memory sessions")
		}
	}
	if sessions == nil {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	}
	mgr := session.NewManager(sessions, cfg.SessionSecret, cfg.SessionTTL)
	e.Use(middleware.ResolveSession(mgr))

	// Upload storage: local disk by default, S3 when configured.
	uploads, err := storage.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	// The fs driver needs its directory served back out as /uploads.
	if fs, ok := uploads.(*storage.Filesystem); ok {
		e.Static("/uploads", fs.Root())
	}
	// Front-end assets, when present.
	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}

	houses := store.NewHouseStore()
	router.RegisterRoutes(e,
		handler.NewHouseHandler(cfg, houses),
		handler.NewAuthHandler(cfg, mgr),
		handler.NewUploadHandler(cfg, uploads),
	)
	return e, nil
}
