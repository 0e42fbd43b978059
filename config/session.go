package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"goldentouch-backend/session"
)

// Default credentials for local development; override them through the
// environment in any real deployment.
const (
	defaultAdminName    = "Erides Souza"
	defaultAdminEmail   = "erides.souza@goldentouch.com"
	defaultAdminSecret  = "301985"
	defaultSharedSecret = "123"
)

// SessionConfig builds the session credential material from the
// environment. Secrets are hashed here so plaintext never leaves startup.
func SessionConfig() (session.Config, error) {
	adminName := envOr("ADMIN_NAME", defaultAdminName)
	adminEmail := envOr("ADMIN_EMAIL", defaultAdminEmail)

	adminHash, err := session.HashSecret(envOr("ADMIN_SECRET", defaultAdminSecret))
	if err != nil {
		return session.Config{}, fmt.Errorf("hash admin secret: %w", err)
	}
	sharedHash, err := session.HashSecret(envOr("CLIENT_SHARED_SECRET", defaultSharedSecret))
	if err != nil {
		return session.Config{}, fmt.Errorf("hash client secret: %w", err)
	}

	grace := 500 * time.Millisecond
	if env := os.Getenv("SESSION_STARTUP_DELAY_MS"); env != "" {
		if ms, err := strconv.Atoi(env); err == nil && ms >= 0 {
			grace = time.Duration(ms) * time.Millisecond
		}
	}

	return session.Config{
		AdminName:        adminName,
		AdminEmail:       adminEmail,
		AdminSecretHash:  adminHash,
		SharedSecretHash: sharedHash,
		StartupGrace:     grace,
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
