// Package config loads rsinit settings from the config file and RSINIT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyCargo     = "cargo"
	KeyStrict    = "strict"
	KeyCratesAPI = "crates_api"
	KeyDebug     = "debug"
)

// Config holds the settings rsinit reads at startup.
type Config struct {
	// Cargo is the build tool binary, looked up on PATH when not absolute.
	Cargo string `mapstructure:"cargo" yaml:"cargo"`
	// Strict turns init failures into a non-zero exit code.
	Strict    bool   `mapstructure:"strict" yaml:"strict"`
	CratesAPI string `mapstructure:"crates_api" yaml:"crates_api"`
	Debug     bool   `mapstructure:"debug" yaml:"debug"`
}

// SetDefaults registers the default value of every known key.
func SetDefaults() {
	viper.SetDefault(KeyCargo, "cargo")
	viper.SetDefault(KeyStrict, false)
	viper.SetDefault(KeyCratesAPI, "https://crates.io/api/v1")
	viper.SetDefault(KeyDebug, false)
}

// ValidKeys returns the keys accepted by `config set`, sorted.
func ValidKeys() []string {
	keys := []string{KeyCargo, KeyStrict, KeyCratesAPI, KeyDebug}
	sort.Strings(keys)
	return keys
}

// IsValidKey reports whether key is a known config key.
func IsValidKey(key string) bool {
	for _, k := range ValidKeys() {
		if k == key {
			return true
		}
	}
	return false
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := viper.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cargo, err := ResolveCargo(cfg.Cargo)
	if err != nil {
		return nil, err
	}
	cfg.Cargo = cargo

	return &cfg, nil
}

// ResolveCargo expands a leading ~ or ~/ and makes a binary given as a path
// absolute. Bare names are left for PATH lookup. init runs cargo from several
// directories, so a relative path would otherwise resolve differently per step.
func ResolveCargo(cargo string) (string, error) {
	if cargo == "~" || strings.HasPrefix(cargo, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		cargo = filepath.Join(home, strings.TrimPrefix(cargo[1:], "/"))
	}

	if !strings.ContainsRune(cargo, '/') && !strings.ContainsRune(cargo, filepath.Separator) {
		return cargo, nil
	}

	abs, err := filepath.Abs(cargo)
	if err != nil {
		return "", fmt.Errorf("failed to resolve cargo path %s: %w", cargo, err)
	}
	return abs, nil
}

// SaveConfig writes cfg to path, creating its directory.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(KeyCargo, cfg.Cargo)
	viper.Set(KeyStrict, cfg.Strict)
	viper.Set(KeyCratesAPI, cfg.CratesAPI)
	viper.Set(KeyDebug, cfg.Debug)

	return viper.WriteConfigAs(path)
}

func GetConfigValue(key string) interface{} {
	return viper.Get(key)
}

// SetConfigValue converts value to the key's type and writes the config file.
func SetConfigValue(key, value string) (interface{}, error) {
	if !IsValidKey(key) {
		return nil, fmt.Errorf("unknown configuration key: %s (valid keys: %s)", key, strings.Join(ValidKeys(), ", "))
	}

	var configValue interface{} = value
	switch key {
	case KeyStrict, KeyDebug:
		configValue = value == "true" || value == "True" || value == "1"
	}

	viper.Set(key, configValue)

	path := viper.ConfigFileUsed()
	if path == "" {
		path = GetConfigPath()
	}
	if path == "" {
		return nil, fmt.Errorf("unable to determine config file location")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(path); err != nil {
		return nil, err
	}
	return configValue, nil
}
