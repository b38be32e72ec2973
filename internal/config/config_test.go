package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "MAX_PAGE_SIZE", "DEFAULT_LANG", "CONFIG_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerPort != "8080" {
		t.Fatalf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.MaxPageSize != 500 {
		t.Fatalf("MaxPageSize = %d, want 500", cfg.MaxPageSize)
	}
	if cfg.DefaultLang != "en" {
		t.Fatalf("DefaultLang = %q, want en", cfg.DefaultLang)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MAX_PAGE_SIZE", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerPort != "9090" || cfg.MaxPageSize != 25 {
		t.Fatalf("env override not applied: %+v", cfg)
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "server_port: \"7070\"\ndebug: true\nmax_page_size: 42\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerPort != "7070" || !cfg.Debug || cfg.MaxPageSize != 42 {
		t.Fatalf("yaml overlay not applied: %+v", cfg)
	}
	// Values absent from the file keep their env defaults.
	if cfg.DatabaseURL != "./dashboard.db" {
		t.Fatalf("DatabaseURL = %q, want default", cfg.DatabaseURL)
	}
}

func TestLoadBadConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
