// Package config loads the weblarek client configuration and user
// preferences. Both live under ~/.config/weblarek as TOML files; missing
// files fall back to defaults so a fresh install needs no setup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the two origins every network path is built from.
type Config struct {
	APIOrigin string `toml:"api_origin"`
	CDNOrigin string `toml:"cdn_origin"`
}

const (
	defaultConfigPath = "~/.config/weblarek/config.toml"
	defaultOrigin     = "https://larek-api.nomoreparties.co"

	apiBasePath = "/api/weblarek"
	cdnBasePath = "/content/weblarek"
)

// Load locates and parses the config file, falling back to defaults when
// it is missing. An empty path uses the default location.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path, defaultConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIOrigin: defaultOrigin, CDNOrigin: defaultOrigin}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var parsed Config
	if err := toml.Unmarshal(raw, &parsed); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if origin := strings.TrimSpace(parsed.APIOrigin); origin != "" {
		cfg.APIOrigin = origin
	}
	if origin := strings.TrimSpace(parsed.CDNOrigin); origin != "" {
		cfg.CDNOrigin = origin
	}
	return cfg, nil
}

// APIBaseURL returns the base URL the product API lives under.
func (c Config) APIBaseURL() string {
	return strings.TrimRight(c.APIOrigin, "/") + apiBasePath
}

// CDNBaseURL returns the base URL product images are served from.
func (c Config) CDNBaseURL() string {
	return strings.TrimRight(c.CDNOrigin, "/") + cdnBasePath
}

func resolvePath(path, fallback string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = fallback
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
