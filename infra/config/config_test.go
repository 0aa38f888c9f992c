package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ParsesEnvAndDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MURMUR_SERVER", "https://chat.example.com/")
	t.Setenv("MURMUR_CHAT", "design")
	t.Setenv("MURMUR_TOKEN", "inline-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerURL != "https://chat.example.com" {
		t.Fatalf("server must be normalized: %q", cfg.ServerURL)
	}
	if cfg.ChatID != "design" || cfg.Token != "inline-token" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	if cfg.TokenPath == "" || cfg.UIStatePath == "" {
		t.Fatalf("expected default paths: %#v", cfg)
	}
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	confDir := filepath.Join(home, ".config", "murmur")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	file := []byte("server: https://file.example.com\nchat: random\n")
	if err := os.WriteFile(filepath.Join(confDir, "config.yaml"), file, 0o600); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	t.Setenv("MURMUR_SERVER", "")
	t.Setenv("MURMUR_CHAT", "overridden")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerURL != "https://file.example.com" {
		t.Fatalf("expected server from file, got %q", cfg.ServerURL)
	}
	if cfg.ChatID != "overridden" {
		t.Fatalf("env must win over file, got %q", cfg.ChatID)
	}
}

func TestLoad_RejectsNonHTTPS(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MURMUR_SERVER", "http://insecure.local")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-https server")
	}
}

func TestLoad_RejectsMalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	confDir := filepath.Join(home, ".config", "murmur")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(confDir, "config.yaml"), []byte("\tnot yaml"), 0o600); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error for invalid yaml")
	}
}

func TestUIState_LoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ui_state.json")

	st, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("missing state should not error: %v", err)
	}
	if st != (UIState{}) {
		t.Fatalf("expected empty state for missing file")
	}

	want := UIState{ChatID: "design"}
	if err := SaveUIState(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("load after save failed: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected loaded state got=%#v want=%#v", got, want)
	}

	if err := os.WriteFile(path, []byte("not-json"), 0o600); err != nil {
		t.Fatalf("write corrupt state failed: %v", err)
	}
	if _, err := LoadUIState(path); err == nil {
		t.Fatalf("expected parse error for invalid json")
	}
}
