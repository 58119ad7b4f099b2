package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvFile, "WORDS_FILE", "ANSWERS_FILE", "RESULTS_DB", "LOG_LEVEL", "PORT",
		"JWT_SECRET", "CORS_ORIGIN", "STORE_BACKEND", "REDIS_ADDR", "DAILY_SALT", "SESSION_TTL",
		"ENGINE_TIMEOUT", "ENGINE_MAX_SETS", "SIMULATE_MAX_GUESSES", "COOKIE_SECURE"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFile, filepath.Join(t.TempDir(), "missing.yaml"))
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Engine.MaxSets != 50000 || c.Engine.Timeout != 5*time.Second {
		t.Fatalf("engine defaults = %+v", c.Engine)
	}
	if c.Server.Port != "5175" || c.Store.Backend != "memory" || c.Simulate.MaxGuesses != 20 {
		t.Fatalf("defaults = %+v", c)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing explicit file accepted")
	}
}

func TestLoadParsesYamlThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := strings.TrimSpace(`
lexicon: ./words.txt
server:
  port: "8080"
  session_ttl: 2h
store:
  backend: Redis
engine:
  max_sets: 1000
  timeout: 750ms
`)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENGINE_MAX_SETS", "42")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Lexicon != "./words.txt" || c.Server.SessionTTL != 2*time.Hour || c.Engine.Timeout != 750*time.Millisecond {
		t.Fatalf("yaml values not applied: %+v", c)
	}
	if c.Server.Port != "9090" || c.Engine.MaxSets != 42 {
		t.Fatalf("env overrides not applied: port=%s max=%d", c.Server.Port, c.Engine.MaxSets)
	}
	if c.Store.Backend != "redis" {
		t.Fatalf("backend = %q, want redis", c.Store.Backend)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENGINE_TIMEOUT", "soon")
	if _, err := Load(""); err == nil {
		t.Fatalf("bad duration accepted")
	}
	t.Setenv("ENGINE_TIMEOUT", "")
	t.Setenv("STORE_BACKEND", "etcd")
	if _, err := Load(""); err == nil {
		t.Fatalf("unknown backend accepted")
	}
}
