package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsWithoutConfigFile(t *testing.T) {
	t.Parallel()

	cfg, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if cfg.Endpoints.Auth != "http://localhost:8083" {
		t.Fatalf("Auth = %q", cfg.Endpoints.Auth)
	}
	if cfg.Endpoints.StudyPlan != "http://localhost:8081/api/v1" {
		t.Fatalf("StudyPlan = %q", cfg.Endpoints.StudyPlan)
	}
	if cfg.Endpoints.Catalog != "http://localhost:8080/programs" {
		t.Fatalf("Catalog = %q", cfg.Endpoints.Catalog)
	}
	if cfg.Endpoints.Advisor != "http://localhost:8082/ai-advisor" {
		t.Fatalf("Advisor = %q", cfg.Endpoints.Advisor)
	}
	if filepath.Base(cfg.SessionPath) != "session.json" {
		t.Fatalf("SessionPath = %q", cfg.SessionPath)
	}
}

func TestHostOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "host: campus.example.edu\n")

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if cfg.Endpoints.Auth != "http://campus.example.edu:8083" {
		t.Fatalf("Auth = %q", cfg.Endpoints.Auth)
	}
	if cfg.Endpoints.StudyPlan != "http://campus.example.edu:8081/api/v1" {
		t.Fatalf("StudyPlan = %q", cfg.Endpoints.StudyPlan)
	}
}

func TestGatewayAndServiceOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `
gateway: https://api.example.edu/
services:
  advisor: https://advisor.example.edu/ai-advisor/
`)

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if cfg.Endpoints.Auth != "https://api.example.edu" {
		t.Fatalf("Auth = %q", cfg.Endpoints.Auth)
	}
	if cfg.Endpoints.Catalog != "https://api.example.edu/programs" {
		t.Fatalf("Catalog = %q", cfg.Endpoints.Catalog)
	}
	if cfg.Endpoints.Advisor != "https://advisor.example.edu/ai-advisor" {
		t.Fatalf("Advisor override = %q", cfg.Endpoints.Advisor)
	}
}

func TestMalformedConfigFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "host: [not: valid\n")

	if _, err := New(dir); err == nil {
		t.Fatalf("New() succeeded on malformed yaml, want error")
	}
}

func writeConfig(t *testing.T, dir, payload string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(payload), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
