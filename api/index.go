// Package handler exposes the whole API as a single serverless
// function (the Vercel Go convention: one exported Handler in api/).
// It wraps the same Echo application the standalone server runs, so
// route logic is not duplicated between deployment targets. The house
// store lives in the function instance's memory and is discarded when
// the instance is recycled, exactly like the standalone process.
package handler

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/house-listing-api/internal/app"
	"github.com/iliyamo/house-listing-api/internal/config"
)

var (
	once sync.Once
	e    *echo.Echo
	err  error
)

// Handler is the serverless entrypoint. The application is built once
// per instance and reused across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		e, err = app.New(context.Background(), config.Load())
	})
	if err != nil {
		log.Printf("app init failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	e.ServeHTTP(w, r)
}
