package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName          = "scholarcli"
	ConfigFileName   = "config.json"
	ProxiesFileName  = "proxies.txt"
	EnvFileName      = ".env"
	CatalogFileName  = "catalog.json"
	DatabaseFileName = "scholarships.db"
	InboxFileName    = "contact.jsonl"
	FeedDirName      = "feeds"
)

type StoreConfig struct {
	// Driver is file, sqlite or postgres.
	Driver      string `json:"driver"`
	Path        string `json:"path,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`
}

type ScrapeConfig struct {
	Sources       string  `json:"sources"`
	Limit         int     `json:"limit"`
	Concurrency   int     `json:"concurrency"`
	DelaySeconds  float64 `json:"delay_seconds"`
	Retries       int     `json:"retries"`
	IntervalHours int     `json:"interval_hours"`
	WriteFeed     bool    `json:"write_feed"`
}

type APIConfig struct {
	Addr            string   `json:"addr"`
	AllowedOrigins  []string `json:"allowed_origins,omitempty"`
	CacheTTLSeconds int      `json:"cache_ttl_seconds"`
	RedisURL        string   `json:"redis_url,omitempty"`
}

// Config contains persisted defaults. Environment variables win over the
// file.
type Config struct {
	Language     string       `json:"language,omitempty"`
	DefaultLimit int          `json:"default_limit"`
	Store        StoreConfig  `json:"store"`
	Scrape       ScrapeConfig `json:"scrape"`
	API          APIConfig    `json:"api"`
}

func DefaultConfig() Config {
	return Config{
		DefaultLimit: 20,
		Store:        StoreConfig{Driver: "file"},
		Scrape: ScrapeConfig{
			Sources:       "all",
			Limit:         50,
			Concurrency:   4,
			DelaySeconds:  2,
			Retries:       3,
			IntervalHours: 24,
		},
		API: APIConfig{
			Addr:            ":8080",
			CacheTTLSeconds: 300,
		},
	}
}

// ConfigDir honors SCHOLARCLI_CONFIG_DIR before the user config directory.
func ConfigDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("SCHOLARCLI_CONFIG_DIR")); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

func ProxiesPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ProxiesFileName), nil
}

// Load reads .env files, then config.json (JSON5), then applies environment
// overrides.
func Load() (Config, error) {
	cfg := DefaultConfig()
	dir, err := ConfigDir()
	if err != nil {
		return cfg, err
	}
	if err := LoadDotEnv(EnvFileName, filepath.Join(dir, EnvFileName)); err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := json5.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", ConfigFileName, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// LoadDotEnv loads each existing file without overriding variables that are
// already set.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Language = envString("SCHOLARCLI_LANG", cfg.Language)
	cfg.DefaultLimit = envInt("SCHOLARCLI_DEFAULT_LIMIT", cfg.DefaultLimit)

	cfg.Store.Driver = envString("SCHOLARCLI_STORE", cfg.Store.Driver)
	cfg.Store.Path = envString("SCHOLARCLI_STORE_PATH", cfg.Store.Path)
	cfg.Store.DatabaseURL = envString("DATABASE_URL", cfg.Store.DatabaseURL)
	if cfg.Store.DatabaseURL == "" {
		cfg.Store.DatabaseURL = databaseURLFromParts()
	}

	cfg.Scrape.Sources = envString("SCHOLARCLI_SOURCES", cfg.Scrape.Sources)
	cfg.Scrape.Concurrency = envInt("CONCURRENT_REQUESTS", cfg.Scrape.Concurrency)
	cfg.Scrape.DelaySeconds = envFloat("DOWNLOAD_DELAY", cfg.Scrape.DelaySeconds)
	cfg.Scrape.Retries = envInt("RETRY_TIMES", cfg.Scrape.Retries)
	cfg.Scrape.IntervalHours = envInt("SCRAPE_INTERVAL_HOURS", cfg.Scrape.IntervalHours)

	cfg.API.Addr = envString("SCHOLARCLI_ADDR", cfg.API.Addr)
	if origins := strings.TrimSpace(os.Getenv("SCHOLARCLI_ALLOWED_ORIGINS")); origins != "" {
		cfg.API.AllowedOrigins = splitCSV(origins)
	}
	cfg.API.CacheTTLSeconds = envInt("SCHOLARCLI_CACHE_TTL", cfg.API.CacheTTLSeconds)
	cfg.API.RedisURL = envString("REDIS_URL", cfg.API.RedisURL)
}

// databaseURLFromParts builds a postgres URL from DB_* variables. It returns
// "" unless DB_HOST is set.
func databaseURLFromParts() string {
	host := strings.TrimSpace(os.Getenv("DB_HOST"))
	if host == "" {
		return ""
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(envString("DB_USER", "postgres"), envString("DB_PASSWORD", "password")),
		Host:   net.JoinHostPort(host, envString("DB_PORT", "5432")),
		Path:   "/" + envString("DB_NAME", "scholarships"),
	}
	return u.String()
}

// StorePath returns the configured store path or the default location under
// dir for the driver.
func (c Config) StorePath(dir string) string {
	if strings.TrimSpace(c.Store.Path) != "" {
		return c.Store.Path
	}
	switch strings.ToLower(c.Store.Driver) {
	case "sqlite", "sqlite3":
		return filepath.Join(dir, DatabaseFileName)
	default:
		return filepath.Join(dir, CatalogFileName)
	}
}

// Init writes default config.json and proxies.txt if they don't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	proxiesPath := filepath.Join(dir, ProxiesFileName)
	if _, err := os.Stat(proxiesPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(proxiesPath, []byte("# one proxy URL per line\n"), 0o644); err != nil {
			return created, err
		}
		created = append(created, proxiesPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func LoadProxies(flagValue string) ([]string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return splitCSV(flagValue), nil
	}

	if env := strings.TrimSpace(os.Getenv("SCHOLARCLI_PROXIES")); env != "" {
		return splitCSV(env), nil
	}

	path, err := ProxiesPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var proxies []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		proxies = append(proxies, line)
	}
	return proxies, nil
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func envFloat(key string, fallback float64) float64 {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
