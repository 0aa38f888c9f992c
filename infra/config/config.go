package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds application-level configuration.
type Config struct {
	ServerURL   string // e.g. "https://chat.example.com"
	Token       string // Inline token; takes precedence over TokenPath
	TokenPath   string // Path to file containing the access token
	ChatID      string // Chat to open on startup
	UIStatePath string // Path to the persisted UI state file
}

// fileConfig is the optional YAML config file shape.
type fileConfig struct {
	Server    string `yaml:"server"`
	TokenPath string `yaml:"token_path"`
	Chat      string `yaml:"chat"`
}

// Load reads configuration from the optional YAML file and the
// environment. Environment variables win over the file.
//
//	~/.config/murmur/config.yaml — server / token_path / chat
//	MURMUR_SERVER — chat backend URL (default: https://chat.murmur.dev)
//	MURMUR_TOKEN  — inline access token (optional)
//	MURMUR_TOKEN_PATH — path to token file (default: ~/.config/murmur/token)
//	MURMUR_CHAT   — chat ID to open on startup (default: "general")
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	confDir := filepath.Join(home, ".config", "murmur")

	cfg := Config{
		ServerURL:   "https://chat.murmur.dev",
		TokenPath:   filepath.Join(confDir, "token"),
		ChatID:      "general",
		UIStatePath: filepath.Join(confDir, "ui_state.json"),
	}

	if fc, err := loadFile(filepath.Join(confDir, "config.yaml")); err != nil {
		return Config{}, err
	} else {
		cfg.apply(fc)
	}

	if v := os.Getenv("MURMUR_SERVER"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("MURMUR_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("MURMUR_TOKEN_PATH"); v != "" {
		cfg.TokenPath = v
	}
	if v := os.Getenv("MURMUR_CHAT"); v != "" {
		cfg.ChatID = v
	}

	normalized, err := normalizeServerURL(cfg.ServerURL)
	if err != nil {
		return Config{}, err
	}
	cfg.ServerURL = normalized

	return cfg, nil
}

func (c *Config) apply(fc fileConfig) {
	if fc.Server != "" {
		c.ServerURL = fc.Server
	}
	if fc.TokenPath != "" {
		c.TokenPath = fc.TokenPath
	}
	if fc.Chat != "" {
		c.ChatID = fc.Chat
	}
}

func loadFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fileConfig{}, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return fc, nil
}

func normalizeServerURL(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid server URL %q: must be absolute", raw)
	}
	if parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid server URL %q: only https is allowed", raw)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}
