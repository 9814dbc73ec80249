package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the mealscan configuration.
type Config struct {
	Provider string       `json:"provider"`
	Model    string       `json:"model"`
	Format   string       `json:"format"`
	Language string       `json:"language"`
	Cache    CacheConfig  `json:"cache"`
	Server   ServerConfig `json:"server"`
}

// CacheConfig controls result caching.
type CacheConfig struct {
	Enabled bool `json:"enabled"`
	// Backend selects the store: "file", "sqlite", or "memory".
	Backend string `json:"backend"`
	// Dir is the file-backend directory; empty selects the platform cache dir.
	Dir string `json:"dir,omitempty"`
	// Path is the sqlite-backend database file; empty selects
	// <cache dir>/cache.db.
	Path string `json:"path,omitempty"`
	// MaxBytes is the storage quota; <= 0 means unbounded.
	MaxBytes int64 `json:"maxBytes"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr           string   `json:"addr"`
	AllowedOrigins []string `json:"allowedOrigins"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		Format:   "text",
		Language: "en",
		Cache: CacheConfig{
			Enabled:  true,
			Backend:  "file",
			MaxBytes: 50 << 20, // 50 MiB
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for mealscan.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mealscan"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "mealscan"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "mealscan"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "mealscan"), nil
	default:
		return filepath.Join(home, ".config", "mealscan"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// fileConfig mirrors Config for decoding the config file. Fields where the
// zero value is meaningful (a disabled cache, an unbounded quota) are
// pointers so absence and zero stay distinguishable during the merge.
type fileConfig struct {
	Provider string          `json:"provider"`
	Model    string          `json:"model"`
	Format   string          `json:"format"`
	Language string          `json:"language"`
	Cache    fileCacheConfig `json:"cache"`
	Server   ServerConfig    `json:"server"`
}

type fileCacheConfig struct {
	Enabled  *bool  `json:"enabled"`
	Backend  string `json:"backend"`
	Dir      string `json:"dir"`
	Path     string `json:"path"`
	MaxBytes *int64 `json:"maxBytes"`
}

// LoadFile returns the defaults overlaid with the config file. Returns
// Default() and nil error if the file doesn't exist.
func LoadFile() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	mergeFile(&cfg, fc)
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only non-zero values
// should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

// SetField sets a config value by dotted key, parsing the string per the
// field type. Used by `mealscan config set`.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "format":
		cfg.Format = value
	case "language":
		cfg.Language = value
	case "cache.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q", key, value)
		}
		cfg.Cache.Enabled = b
	case "cache.backend":
		cfg.Cache.Backend = value
	case "cache.dir":
		cfg.Cache.Dir = value
	case "cache.path":
		cfg.Cache.Path = value
	case "cache.maxBytes":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid number for %s: %q", key, value)
		}
		cfg.Cache.MaxBytes = n
	case "server.addr":
		cfg.Server.Addr = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func mergeFile(dst *Config, src fileConfig) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Language != "" {
		dst.Language = src.Language
	}
	if src.Cache.Enabled != nil {
		dst.Cache.Enabled = *src.Cache.Enabled
	}
	if src.Cache.Backend != "" {
		dst.Cache.Backend = src.Cache.Backend
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.Path != "" {
		dst.Cache.Path = src.Cache.Path
	}
	if src.Cache.MaxBytes != nil {
		dst.Cache.MaxBytes = *src.Cache.MaxBytes
	}
	if src.Server.Addr != "" {
		dst.Server.Addr = src.Server.Addr
	}
	if len(src.Server.AllowedOrigins) > 0 {
		dst.Server.AllowedOrigins = src.Server.AllowedOrigins
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("MEALSCAN_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("MEALSCAN_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("MEALSCAN_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("MEALSCAN_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("MEALSCAN_CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("MEALSCAN_CACHE_DIR"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := os.Getenv("MEALSCAN_CACHE_MAX_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Cache.MaxBytes = n
		}
	}
	if v := os.Getenv("MEALSCAN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["provider"]; ok && v != "" {
		cfg.Provider = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["language"]; ok && v != "" {
		cfg.Language = v
	}
	if v, ok := overrides["cacheBackend"]; ok && v != "" {
		cfg.Cache.Backend = v
	}
	if v, ok := overrides["cacheDir"]; ok && v != "" {
		cfg.Cache.Dir = v
	}
	if v, ok := overrides["addr"]; ok && v != "" {
		cfg.Server.Addr = v
	}
}
