package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port string

	SheetID             string
	SheetName           string
	ServiceAccountEmail string
	PrivateKey          string

	AdminSecretKey string

	CacheTTLSec   int
	CacheSweepSec int

	CorsAllowedOrigins []string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		_, _ = fmt.Sscanf(v, "%d", &n)
		return n
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if item := strings.TrimSpace(p); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func Load() *Config {
	return &Config{
		Port: getenv("PORT", "8080"),

		SheetID:             getenv("GOOGLE_SHEET_ID", ""),
		SheetName:           getenv("GOOGLE_SHEET_NAME", "Sheet1"),
		ServiceAccountEmail: getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
		// Deployment env vars carry the key with literal "\n" sequences.
		PrivateKey: strings.ReplaceAll(getenv("GOOGLE_PRIVATE_KEY", ""), `\n`, "\n"),

		AdminSecretKey: getenv("ADMIN_SECRET_KEY", ""),

		CacheTTLSec:   getenvi("CACHE_TTL_SECONDS", 300),
		CacheSweepSec: getenvi("CACHE_SWEEP_SECONDS", 300),

		CorsAllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	switch {
	case c.SheetID == "":
		return fmt.Errorf("GOOGLE_SHEET_ID is required")
	case c.ServiceAccountEmail == "":
		return fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_EMAIL is required")
	case c.PrivateKey == "":
		return fmt.Errorf("GOOGLE_PRIVATE_KEY is required")
	case c.AdminSecretKey == "":
		return fmt.Errorf("ADMIN_SECRET_KEY is required")
	}
	return nil
}
