package config

import (
	"os"
	"strings"
	"time"
)

// SiteBaseURL is the public origin used to build canonical post URLs in
// redirect payloads and the sitemap.
var SiteBaseURL string

// PublishSkewTolerance widens the visibility cutoff so a post published
// "now" is not hidden by clock skew between the database and this
// process.
var PublishSkewTolerance time.Duration

// UploadDir is where media uploads are stored on disk.
var UploadDir string

func init() {
	SiteBaseURL = strings.TrimRight(getEnv("SITE_BASE_URL", "http://localhost:4000"), "/")
	UploadDir = getEnv("UPLOAD_DIR", "uploads")

	PublishSkewTolerance = 2 * time.Second
	if v := os.Getenv("PUBLISH_SKEW_TOLERANCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			PublishSkewTolerance = d
		}
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
