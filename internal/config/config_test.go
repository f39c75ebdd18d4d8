package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Setenv restores the originals after the test.
	for _, key := range []string{"ECOSHARE_ADDR", "ECOSHARE_LOG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr ':8080', got %q", cfg.Addr)
	}
	if cfg.LogPath != "" {
		t.Errorf("expected no log path, got %q", cfg.LogPath)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ECOSHARE_ADDR", "127.0.0.1:9000")
	t.Setenv("ECOSHARE_LOG", "/tmp/ecoshare.log")
	t.Setenv("ECOSHARE_FLASH_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("expected addr from env, got %q", cfg.Addr)
	}
	if cfg.LogPath != "/tmp/ecoshare.log" {
		t.Errorf("expected log path from env, got %q", cfg.LogPath)
	}
	if cfg.FlashSecret != "s3cret" {
		t.Errorf("expected secret from env, got %q", cfg.FlashSecret)
	}
}
