package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8090" {
		t.Errorf("expected port 8090, got %q", cfg.Port)
	}
	if cfg.DefaultPageSize != 1000 {
		t.Errorf("expected default page size 1000, got %d", cfg.DefaultPageSize)
	}
	if cfg.Encoding != "utf-8" {
		t.Errorf("expected utf-8, got %q", cfg.Encoding)
	}
	if cfg.PathstoreTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.PathstoreTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TXTREAD_DEFAULT_PAGE_SIZE", "-3")
	t.Setenv("TXTREAD_PAGE_SIZE", "50")
	t.Setenv("TXTREAD_FILE_PATH", "/books/a.txt")
	t.Setenv("TXTREAD_QUEUE_SIZE", "not a number")
	t.Setenv("PATHSTORE_TIMEOUT", "3s")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %q", cfg.Port)
	}
	if cfg.DefaultPageSize != 1000 {
		t.Errorf("expected repaired default page size, got %d", cfg.DefaultPageSize)
	}
	if cfg.SeedPageSize != 50 || cfg.SeedFilePath != "/books/a.txt" {
		t.Errorf("unexpected seeds %d %q", cfg.SeedPageSize, cfg.SeedFilePath)
	}
	if cfg.QueueSize != 64 {
		t.Errorf("expected fallback queue size, got %d", cfg.QueueSize)
	}
	if cfg.PathstoreTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.PathstoreTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"remote without key", func(c *Config) { c.PathstoreURL = "http://ps" }, true},
		{"remote with key", func(c *Config) { c.PathstoreURL = "http://ps"; c.PathstoreAPIKey = "k" }, false},
		{"no settings file", func(c *Config) { c.SettingsFile = "" }, true},
		{"unknown encoding", func(c *Config) { c.Encoding = "nope-42" }, true},
		{"gbk", func(c *Config) { c.Encoding = "gbk" }, false},
		{"negative seed page size", func(c *Config) { c.SeedPageSize = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
