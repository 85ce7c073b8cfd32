// Package storage abstracts where uploaded listing images end up. The
// API surface is deliberately small: store a file, get back the URL a
// browser can load it from. Two backends exist, local disk (default)
// and an S3-compatible bucket, selected by configuration so deployments
// can swap providers without touching handler code.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/iliyamo/house-listing-api/internal/config"
)

// Storage persists one uploaded file and returns its public URL.
// The original client filename is only used for its extension; backends
// generate their own collision-free names.
type Storage interface {
	Save(ctx context.Context, originalName, contentType string, r io.Reader) (url string, err error)
}

// New selects a Storage implementation from configuration.
//
//	UPLOAD_DRIVER=fs (default) – files under UPLOAD_DIR, served at /uploads
//	UPLOAD_DRIVER=s3           – objects in S3_BUCKET (S3 or MinIO)
func New(ctx context.Context, cfg config.Config) (Storage, error) {
	switch cfg.UploadDriver {
	case "", "fs":
		return NewFilesystem(cfg.UploadDir)
	case "s3":
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown upload driver %q", cfg.UploadDriver)
	}
}
