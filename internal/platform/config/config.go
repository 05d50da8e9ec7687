package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration sourced from the environment.
type Server struct {
	Addr string

	// DatabaseURL enables the Postgres registration store; empty keeps the
	// in-memory store (development default).
	DatabaseURL string

	Redis RedisConfig

	// PortalURL is the registration page the scraper extracts from.
	PortalURL string
	// SchemaSnapshotPath is a bundled schema JSON served when nothing has
	// been published to the schema store yet.
	SchemaSnapshotPath string
	// ScrapeTimeout bounds one extraction run, navigation included.
	ScrapeTimeout time.Duration

	// LocationAPIURL is the advisory PIN-code lookup endpoint.
	LocationAPIURL string
	// LocationCacheTTL bounds how long lookup results are cached.
	LocationCacheTTL time.Duration
}

// RedisConfig holds connection settings for the optional Redis client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:               envOr("UDYAM_ADDR", ":8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		PortalURL:          envOr("UDYAM_PORTAL_URL", "https://udyamregistration.gov.in/UdyamRegistration.aspx"),
		SchemaSnapshotPath: envOr("UDYAM_SCHEMA_SNAPSHOT", "udyamSchema.json"),
		ScrapeTimeout:      envDurationOr("UDYAM_SCRAPE_TIMEOUT", 30*time.Second),
		LocationAPIURL:     envOr("LOCATION_API_URL", "https://api.postalpincode.in/pincode"),
		LocationCacheTTL:   envDurationOr("LOCATION_CACHE_TTL", 24*time.Hour),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envIntOr("REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDurationOr("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDurationOr("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDurationOr("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
