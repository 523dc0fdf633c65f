package config

import (
	"errors"
	"os"
)

// ErrNotConfigured is returned when the server-held OwnerRez credential pair
// is absent. It is a per-request failure: nothing is checked at startup, so a
// credential rotation takes effect without a restart.
var ErrNotConfigured = errors.New("OWNERREZ_API_TOKEN or OWNERREZ_EMAIL is not configured")

const defaultBaseURL = "https://api.ownerrez.com/v2"

// Vendor is the OwnerRez account identity used for Basic auth.
type Vendor struct {
	Email string
	Token string
}

// VendorFromEnv reads the credential pair for one request.
func VendorFromEnv() (Vendor, error) {
	v := Vendor{
		Email: os.Getenv("OWNERREZ_EMAIL"),
		Token: os.Getenv("OWNERREZ_API_TOKEN"),
	}
	if v.Email == "" || v.Token == "" {
		return Vendor{}, ErrNotConfigured
	}
	return v, nil
}

// BaseURL returns the vendor API root, overridable for staging.
func BaseURL() string {
	if v := os.Getenv("OWNERREZ_API_BASE"); v != "" {
		return v
	}
	return defaultBaseURL
}

// Addr returns the listen address from PORT, defaulting to :8080.
func Addr() string {
	port := os.Getenv("PORT")
	if port == "" {
		return ":8080"
	}
	if port[0] != ':' {
		return ":" + port
	}
	return port
}

// RedisURL returns the optional response-cache address; empty disables the
// cache entirely.
func RedisURL() string {
	return os.Getenv("REDIS_URL")
}
