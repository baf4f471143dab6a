package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"todo-api/internal/observability/jsonlog"
)

type Config struct {
	Addr            string
	AllowedOrigin   string
	LogLevel        slog.Level
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

func Default() Config {
	return Config{
		Addr:            ":8000",
		AllowedOrigin:   "http://localhost:3000",
		LogLevel:        slog.LevelInfo,
		RequestTimeout:  3 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxBodyBytes:    1 << 20,
	}
}

// Load reads settings from the environment. If envFile exists its entries are
// loaded first; variables already set in the environment win.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", envFile, err)
			}
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, falling back to Default for unset keys.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var errs []error

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("TODO_ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := get("TODO_ALLOWED_ORIGIN"); ok {
		cfg.AllowedOrigin = v
	}
	if v, ok := get("TODO_LOG_LEVEL"); ok {
		lvl, err := jsonlog.ParseLevel(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("TODO_LOG_LEVEL: %w", err))
		}
		cfg.LogLevel = lvl
	}
	if v, ok := get("TODO_REQUEST_TIMEOUT"); ok {
		d, err := parsePositiveDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("TODO_REQUEST_TIMEOUT: %w", err))
		}
		cfg.RequestTimeout = d
	}
	if v, ok := get("TODO_SHUTDOWN_TIMEOUT"); ok {
		d, err := parsePositiveDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("TODO_SHUTDOWN_TIMEOUT: %w", err))
		}
		cfg.ShutdownTimeout = d
	}
	if v, ok := get("TODO_MAX_BODY_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("TODO_MAX_BODY_BYTES: must be a positive integer, got %q", v))
		}
		cfg.MaxBodyBytes = n
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parsePositiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}
