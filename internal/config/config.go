// Package config reads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port        int
	DatabaseURL string
	Env         string

	AdminTokenSecret string
	PaymentPublicKey string

	GeoBaseURL    string
	GeoTimeout    time.Duration
	DetectTimeout time.Duration

	AllowedOrigins []string
	MaxSessions    int
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Load reads the optional dotenv files, then the environment.
// Variables already set in the environment take precedence.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	env := envReader{lookup: lookup}

	cfg := Config{
		Port:             env.int("PORT", 8080),
		DatabaseURL:      env.string("DATABASE_URL", ""),
		Env:              env.string("APP_ENV", EnvProduction),
		AdminTokenSecret: env.string("ADMIN_TOKEN_SECRET", ""),
		PaymentPublicKey: env.string("PAYMENT_PUBLIC_KEY", ""),
		GeoBaseURL:       env.string("GEO_BASE_URL", "https://ipapi.co"),
		GeoTimeout:       env.duration("GEO_TIMEOUT", 5*time.Second),
		DetectTimeout:    env.duration("DETECT_TIMEOUT", 8*time.Second),
		AllowedOrigins:   env.list("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MaxSessions:      env.int("MAX_SESSIONS", 10_000),
	}

	if env.err != nil {
		return Config{}, env.err
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}

	return cfg, nil
}

type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *envReader) string(key, def string) string {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}

	return v
}

func (r *envReader) int(key string, def int) int {
	v := r.string(key, "")
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		r.err = errors.Join(r.err, fmt.Errorf("%s: %w", key, err))
		return def
	}

	return n
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	v := r.string(key, "")
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		r.err = errors.Join(r.err, fmt.Errorf("%s: %w", key, err))
		return def
	}
	if d <= 0 {
		r.err = errors.Join(r.err, fmt.Errorf("%s must be positive", key))
		return def
	}

	return d
}

func (r *envReader) list(key string, def []string) []string {
	v := r.string(key, "")
	if v == "" {
		return def
	}

	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}

	return out
}
