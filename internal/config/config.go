// internal/config/config.go
//
// Runtime configuration for the helper.
// Values start at their defaults, are overlaid by an optional YAML file and
// finally by environment variables, so a .env file always wins.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvFile names the environment variable holding the config file path.
const EnvFile = "WORDLEHELPER_CONFIG"

// Server configures the HTTP API.
type Server struct {
	Port         string        `yaml:"port"`
	JWTSecret    string        `yaml:"jwt_secret"`
	SessionTTL   time.Duration `yaml:"session_ttl"`
	CORSOrigin   string        `yaml:"cors_origin"`
	SecureCookie bool          `yaml:"secure_cookie"`
}

// Store selects the session backend.
type Store struct {
	Backend   string `yaml:"backend"` // memory | redis
	RedisAddr string `yaml:"redis_addr"`
}

// Engine holds the search budgets.
type Engine struct {
	MaxSets int           `yaml:"max_sets"`
	Timeout time.Duration `yaml:"timeout"`
}

// Simulate configures automated play.
type Simulate struct {
	MaxGuesses int `yaml:"max_guesses"`
}

// Daily configures date to answer mapping.
type Daily struct {
	Salt string `yaml:"salt"`
}

// Config is the full configuration tree.
type Config struct {
	Lexicon  string   `yaml:"lexicon"` // empty means the embedded list
	Answers  string   `yaml:"answers"` // empty means the embedded list
	DB       string   `yaml:"db"`
	LogLevel string   `yaml:"log_level"`
	Server   Server   `yaml:"server"`
	Store    Store    `yaml:"store"`
	Engine   Engine   `yaml:"engine"`
	Simulate Simulate `yaml:"simulate"`
	Daily    Daily    `yaml:"daily"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DB:       "./data/results.db",
		LogLevel: "info",
		Server: Server{
			Port:       "5175",
			JWTSecret:  "dev-secret-change-me",
			SessionTTL: 24 * time.Hour,
			CORSOrigin: "http://localhost:5173",
		},
		Store:    Store{Backend: "memory", RedisAddr: "localhost:6379"},
		Engine:   Engine{MaxSets: 50000, Timeout: 5 * time.Second},
		Simulate: Simulate{MaxGuesses: 20},
		Daily:    Daily{Salt: "wordlehelper"},
	}
}

// Load builds the configuration from defaults, the YAML file at path (or
// $WORDLEHELPER_CONFIG when path is empty) and the environment.
// A missing file is only an error when path was given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvFile)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Lexicon = getEnv("WORDS_FILE", c.Lexicon)
	c.Answers = getEnv("ANSWERS_FILE", c.Answers)
	c.DB = getEnv("RESULTS_DB", c.DB)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.JWTSecret = getEnv("JWT_SECRET", c.Server.JWTSecret)
	c.Server.CORSOrigin = getEnv("CORS_ORIGIN", c.Server.CORSOrigin)
	c.Server.SecureCookie = c.Server.SecureCookie || os.Getenv("COOKIE_SECURE") == "true"
	c.Store.Backend = getEnv("STORE_BACKEND", c.Store.Backend)
	c.Store.RedisAddr = getEnv("REDIS_ADDR", c.Store.RedisAddr)
	c.Daily.Salt = getEnv("DAILY_SALT", c.Daily.Salt)

	var err error
	if c.Server.SessionTTL, err = durationEnv("SESSION_TTL", c.Server.SessionTTL); err != nil {
		return err
	}
	if c.Engine.Timeout, err = durationEnv("ENGINE_TIMEOUT", c.Engine.Timeout); err != nil {
		return err
	}
	if c.Engine.MaxSets, err = intEnv("ENGINE_MAX_SETS", c.Engine.MaxSets); err != nil {
		return err
	}
	if c.Simulate.MaxGuesses, err = intEnv("SIMULATE_MAX_GUESSES", c.Simulate.MaxGuesses); err != nil {
		return err
	}
	return nil
}

func (c *Config) validate() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	switch c.Store.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("store.backend must be memory or redis, got %q", c.Store.Backend)
	}
	if c.Simulate.MaxGuesses < 0 {
		return fmt.Errorf("simulate.max_guesses must be >= 0")
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func durationEnv(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return d, nil
}

func intEnv(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return n, nil
}
