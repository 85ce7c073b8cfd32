package config // package config loads application configuration from environment variables

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Every variable has a fallback default so
// the service runs locally with no configuration at all; the admin
// credentials and session secret defaults are deliberately insecure
// and must be overridden in production.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	AdminUsername  string        // admin login username
	AdminPassword  string        // admin login password
	SessionSecret  string        // secret used to sign session cookies
	SessionTTL     time.Duration // lifetime of an admin session
	SessionStore   string        // session backend: "memory" or "redis"
	UploadDriver   string        // upload storage backend: "fs" or "s3"
	UploadDir      string        // local directory for stored uploads (fs driver)
	StaticDir      string        // directory of front-end assets to serve, empty disables
	MaxUploadFiles int           // maximum files accepted per upload request
	CORSOrigins    []string      // allowed CORS origins
	EventsEnabled  bool          // publish listing events to RabbitMQ when true
	S3Bucket       string        // bucket for the s3 upload driver
	S3Region       string        // region for the s3 upload driver
	S3Endpoint     string        // optional custom S3 endpoint (e.g. MinIO)
	S3PathStyle    bool          // use path-style addressing with the custom endpoint
}

// Load reads configuration from the environment, applying defaults for
// anything unset. Unlike services that refuse to start on missing
// variables, this one always comes up: the documented defaults exist
// for local development and demos.
func Load() Config {
	return Config{
		Env:            getenv("APP_ENV", "dev"),
		Port:           getenv("APP_PORT", "5000"),
		AdminUsername:  getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getenv("ADMIN_PASSWORD", "admin123"),
		SessionSecret:  getenv("SESSION_SECRET", "your-strong-secret-key"),
		SessionTTL:     time.Duration(atoi(getenv("SESSION_TTL_HOURS", "24"))) * time.Hour,
		SessionStore:   getenv("SESSION_STORE", "memory"),
		UploadDriver:   getenv("UPLOAD_DRIVER", "fs"),
		UploadDir:      getenv("UPLOAD_DIR", "./uploads"),
		StaticDir:      getenv("STATIC_DIR", "./public"),
		MaxUploadFiles: atoi(getenv("MAX_UPLOAD_FILES", "10")),
		CORSOrigins:    splitList(getenv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5000")),
		EventsEnabled:  getenv("EVENTS_ENABLED", "false") == "true",
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3Region:       os.Getenv("S3_REGION"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3PathStyle:    strings.EqualFold(os.Getenv("S3_PATH_STYLE"), "true"),
	}
}

// splitList parses a comma-separated environment value into its
// non-empty, space-trimmed parts.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// getenv returns the value of an environment variable or a default
// when unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
