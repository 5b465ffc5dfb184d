/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type CatalogConfig struct {
	BaseURL       string `yaml:"base_url"`
	TimeoutMs     int    `yaml:"timeout_ms"`
	CacheTTLHours int    `yaml:"cache_ttl_hours"`
	Offline       bool   `yaml:"offline"` // skip the catalog entirely, presets only
	// Token is not stored on disk; it lives in the OS keychain.
}

type CompileConfig struct {
	AssetChecks  bool `yaml:"asset_checks"`
	TextLint     bool `yaml:"text_lint"`
	MaxTextLines int  `yaml:"max_text_lines"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Catalog       CatalogConfig `yaml:"catalog"`
	Compile       CompileConfig `yaml:"compile"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Catalog:       CatalogConfig{BaseURL: "https://api.objection.lol", TimeoutMs: 10000, CacheTTLHours: 24, Offline: false},
		Compile:       CompileConfig{AssetChecks: true, TextLint: true, MaxTextLines: 3},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath       = "CTW_CONFIG"
	EnvCatalogURL       = "CTW_CATALOG_URL"
	EnvCatalogTimeoutMs = "CTW_CATALOG_TIMEOUT_MS"
	EnvOffline          = "CTW_OFFLINE"
	EnvAssetChecks      = "CTW_ASSET_CHECKS"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "CTW_LOG_LEVEL"
	EnvLogFormat = "CTW_LOG_FORMAT"
	EnvLogSource = "CTW_LOG_SOURCE"
	EnvLogFile   = "CTW_LOG_FILE"
)

// Service/keys for OS keyring.
const (
	keyringService = "CourtWriter"
	keyringToken   = "catalog_token"
)

// tokenStore abstracts the OS keyring, so tests can stub it.
var tokenStore TokenStore = osKeyring{}

type TokenStore interface {
	Get(service, key string) (string, error)
	Set(service, key, value string) error
	Delete(service, key string) error
}

// osKeyring implements TokenStore via github.com/zalando/go-keyring.
type osKeyring struct{}

func (osKeyring) Get(service, key string) (string, error) { return keyring.Get(service, key) }
func (osKeyring) Set(service, key, value string) error    { return keyring.Set(service, key, value) }
func (osKeyring) Delete(service, key string) error        { return keyring.Delete(service, key) }

// Token returns the catalog token from the OS keychain, empty when unset.
func Token() string {
	tok, _ := tokenStore.Get(keyringService, keyringToken)
	return tok
}

// SetToken stores (or, for an empty value, removes) the catalog token.
func SetToken(token string) error {
	if token == "" {
		err := tokenStore.Delete(keyringService, keyringToken)
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return err
	}
	return tokenStore.Set(keyringService, keyringToken, token)
}

// ConfigPath returns the per-user config file path. CTW_CONFIG overrides it.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "CourtWriter")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "CourtWriter")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "courtwriter")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides. The catalog token is returned separately; it comes
// from the keyring, never from the file.
func Load() (AppConfig, string, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, "", err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, Token(), nil
}

// Save writes the user config YAML and persists the token into the OS
// keyring (if non-empty).
func Save(cfg AppConfig, token string) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return err
	}
	if token != "" {
		return SetToken(token)
	}
	return nil
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Catalog.BaseURL != "" {
		dst.Catalog.BaseURL = src.Catalog.BaseURL
	}
	if src.Catalog.TimeoutMs != 0 {
		dst.Catalog.TimeoutMs = src.Catalog.TimeoutMs
	}
	if src.Catalog.CacheTTLHours != 0 {
		dst.Catalog.CacheTTLHours = src.Catalog.CacheTTLHours
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.Catalog.Offline = src.Catalog.Offline
	dst.Compile.AssetChecks = src.Compile.AssetChecks
	dst.Compile.TextLint = src.Compile.TextLint
	if src.Compile.MaxTextLines != 0 {
		dst.Compile.MaxTextLines = src.Compile.MaxTextLines
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvCatalogURL)); v != "" {
		cfg.Catalog.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCatalogTimeoutMs)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.TimeoutMs = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvOffline)); v != "" {
		cfg.Catalog.Offline = isTruthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvAssetChecks)); v != "" {
		cfg.Compile.AssetChecks = isTruthy(v)
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = isTruthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func isTruthy(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	var env string
	switch key {
	case "catalog.base_url":
		env = EnvCatalogURL
	case "catalog.timeout_ms":
		env = EnvCatalogTimeoutMs
	case "catalog.offline":
		env = EnvOffline
	case "compile.asset_checks":
		env = EnvAssetChecks
	case "logging.level":
		env = EnvLogLevel
	case "logging.format":
		env = EnvLogFormat
	case "logging.source":
		env = EnvLogSource
	case "logging.file":
		env = EnvLogFile
	default:
		return "", false
	}
	if os.Getenv(env) != "" {
		return env, true
	}
	return "", false
}
