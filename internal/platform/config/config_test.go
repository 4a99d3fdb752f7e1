package config

import (
	"os"
	"testing"
	"time"
)

func unsetAll(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "") // registra la restauración
		_ = os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetAll(t, "PORT", "PERSONAJES_STORE", "PERSONAJES_DATA_FILE", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store != StoreFile {
		t.Fatalf("expected file store, got %q", cfg.Store)
	}
	if cfg.DataFile != "./data/personajes.json" {
		t.Fatalf("unexpected data file %q", cfg.DataFile)
	}
	if cfg.Addr() != ":3000" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if cfg.ReadTimeout != 5*time.Second || cfg.WriteTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts %v %v", cfg.ReadTimeout, cfg.WriteTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("PERSONAJES_STORE", "memory")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != ":8081" || cfg.Store != StoreMemory || cfg.ReadTimeout != 2*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"postgres without dsn": {"PERSONAJES_STORE": "postgres", "DB_DSN": ""},
		"unknown store":        {"PERSONAJES_STORE": "redis"},
		"bad duration":         {"HTTP_WRITE_TIMEOUT": "soon"},
	}

	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}
