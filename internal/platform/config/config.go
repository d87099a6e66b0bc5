package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
}

// Benefit captures the tunable parameters of the benefit formula. Defaults
// follow the current regulation values and are overridable per deployment.
type Benefit struct {
	// GMI is the guaranteed minimum income threshold per household member.
	GMI float64
	// BaseAmount is the per-child base of the benefit formula.
	BaseAmount float64
	// BorderBonus is the flat addition for border-area households.
	BorderBonus float64
	// ChildAgeLimit bounds child records accepted during validation.
	ChildAgeLimit int
	// DependentAgeLimit bounds dependants counted by the benefit formula.
	DependentAgeLimit int
}

// RedisConfig captures Redis connection settings.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig captures the audit store connection settings.
type PostgresConfig struct {
	URL string
}

// Config aggregates everything main needs to wire the process.
type Config struct {
	Server   Server
	Benefit  Benefit
	Redis    RedisConfig
	Postgres PostgresConfig
}

// AnalysisCacheTTL bounds retention of cached income analysis results.
var AnalysisCacheTTL = 5 * time.Minute

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Config{
		Server: Server{
			Addr:          envString("KOMEK_ADDR", ":8080"),
			JWTSigningKey: jwtSigningKey,
		},
		Benefit: Benefit{
			GMI:               envFloat("KOMEK_GMI", 1500),
			BaseAmount:        envFloat("KOMEK_BASE_AMOUNT", 1200),
			BorderBonus:       envFloat("KOMEK_BORDER_BONUS", 300),
			ChildAgeLimit:     envInt("KOMEK_CHILD_AGE_LIMIT", 16),
			DependentAgeLimit: envInt("KOMEK_DEPENDENT_AGE_LIMIT", 21),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Postgres: PostgresConfig{
			URL: os.Getenv("POSTGRES_URL"),
		},
	}
}
