package config

import (
	"os"
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "devsecret-change-in-production"
	}
	JWTSecret = []byte(secret)
	JWTExpiration = 8 * time.Hour
}
