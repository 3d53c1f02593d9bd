package config

import (
	"time"

	"github.com/inkpress/inkpress/internal/logger"
)

// Duration wraps time.Duration so it can be read from toml and JSON as a
// string like "24h".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err //nolint: wrapcheck
	}

	*d = Duration(parsed)

	return nil
}

// Auth holds the bearer-token settings.
type Auth struct {
	// JWTSecret signs and verifies bearer tokens. Rotating it invalidates
	// every outstanding token.
	JWTSecret string
	// TokenTTL bounds token validity. Zero issues tokens without an expiry.
	TokenTTL Duration
}

// Uploads holds the file upload settings.
type Uploads struct {
	// Dir is the local filesystem directory uploaded files are stored in.
	Dir string
	// PublicPath is the URL path prefix uploaded files are served under.
	PublicPath string
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Auth      Auth
	Uploads   Uploads
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string // domain name for the webserver
	Port         int    // listening port for the webserver
	ShutDownTime int    // wait time for shutdown
	URL          string // base url for the webserver
}
