package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDataDirHonorsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	got, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir returned error: %v", err)
	}
	if got != dir {
		t.Fatalf("GetDataDir = %q want %q", got, dir)
	}
}

func TestEnsureDataDirCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "home")
	t.Setenv(HomeEnv, dir)

	if err := EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir returned error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat data dir: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be a directory", dir)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())

	if _, err := Load("postgres"); err == nil {
		t.Fatalf("expected error for unknown backend")
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend != BackendFile {
		t.Fatalf("default backend = %q want %q", cfg.Backend, BackendFile)
	}
}

func TestLoadAPIConfigDefaults(t *testing.T) {
	t.Setenv(APIURLEnv, "")

	cfg := LoadAPIConfig()
	if cfg.BaseURL != "/api" {
		t.Fatalf("BaseURL = %q want /api", cfg.BaseURL)
	}
	if cfg.Timeout.Seconds() != 10 {
		t.Fatalf("Timeout = %v want 10s", cfg.Timeout)
	}

	t.Setenv(APIURLEnv, "https://shop.example.com/api")
	if got := LoadAPIConfig().BaseURL; got != "https://shop.example.com/api" {
		t.Fatalf("BaseURL = %q want env override", got)
	}
}

func TestLoadEnvKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "STOREFRONT_TEST_FROM_FILE=file\nSTOREFRONT_TEST_PRESET=file\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("STOREFRONT_TEST_PRESET", "process")
	t.Setenv("STOREFRONT_TEST_FROM_FILE", "")
	os.Unsetenv("STOREFRONT_TEST_FROM_FILE")

	if err := LoadEnv(envFile); err != nil {
		t.Fatalf("LoadEnv returned error: %v", err)
	}
	if got := os.Getenv("STOREFRONT_TEST_FROM_FILE"); got != "file" {
		t.Fatalf("STOREFRONT_TEST_FROM_FILE = %q want file", got)
	}
	if got := os.Getenv("STOREFRONT_TEST_PRESET"); got != "process" {
		t.Fatalf("STOREFRONT_TEST_PRESET = %q want process", got)
	}
}

func TestLoadEnvIgnoresMissingFiles(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadEnv returned error for missing file: %v", err)
	}
}
