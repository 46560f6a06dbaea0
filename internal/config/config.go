// Package config handles loading and parsing application configuration.
// The config file path comes from (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// An optional .env file in the working directory is loaded into the
// process environment first, so both CONFIG_PATH and the per-field env
// overrides can live there.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" means the app refuses to start if that value is
// missing.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	// Anything else falls back to the "dev" text logger.
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// HTTPServer is embedded (not a pointer) so its fields are accessible
	// directly on Config:  cfg.HTTPServer.Addr  or after promotion cfg.Addr
	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`

	// Timeouts accept Go duration strings in YAML ("10s", "1m").
	// env-default applies only when neither the file nor the env sets them.
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_SERVER_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_SERVER_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`

	// MaxBodyBytes caps the POST /score body (default 1 MiB).
	// Larger bodies get 413. 0 disables the limit.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"HTTP_SERVER_MAX_BODY_BYTES" env-default:"1048576"`
}

// Load reads the YAML file at path, applies env overrides and defaults,
// and validates env-required fields.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	// Check the file exists first so the message is clearer than the
	// "open: no such file" cleanenv would return later.
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	// cleanenv.ReadConfig reads the YAML file and populates the struct.
	// It then reads every env:"..." tagged field from the environment,
	// fills env-default values, and enforces env-required:"true".
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}

// MustLoad resolves the config path, loads it, and exits the process on
// any failure. If this function returns, the config is valid.
func MustLoad() *Config {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("cannot load .env: %s", err.Error())
	}

	// ── Source 1: environment variable ───────────────────────────────
	// The standard way to pass config to a container (Docker / Kubernetes).
	configPath := os.Getenv("CONFIG_PATH")

	// ── Source 2: command-line flag ───────────────────────────────────
	// Useful when running locally:
	//   go run ./cmd/gpa-api --config=config/local.yaml
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	// Neither source provided a path; we cannot continue.
	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	return cfg
}
