package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrMissingBaseURL is returned when no comment service URL is configured.
var ErrMissingBaseURL = errors.New("comment service URL is not configured")

// Config holds application-level configuration.
type Config struct {
	API      API      `koanf:"api"`
	Account  Account  `koanf:"account"`
	Comments Comments `koanf:"comments"`
	History  History  `koanf:"history"`
	Notify   Notify   `koanf:"notify"`
	Log      Log      `koanf:"log"`
}

// API points at the comment service.
type API struct {
	BaseURL   string        `koanf:"base_url"`   // e.g. "https://replies.example.com"
	Timeout   time.Duration `koanf:"timeout"`    // Per-request timeout
	Token     string        `koanf:"token"`      // Inline bearer token (optional)
	TokenPath string        `koanf:"token_path"` // File holding the bearer token (optional)
}

// Account identifies the managed social account.
type Account struct {
	ID string `koanf:"id"`
}

// Comments configures the unreplied comments view.
type Comments struct {
	PageSize  int `koanf:"page_size"`
	SyncLimit int `koanf:"sync_limit"` // Default limit for fetch & store
}

// History configures the all-comments view.
type History struct {
	PageSize int `koanf:"page_size"`
}

// Notify configures toasts.
type Notify struct {
	TTL time.Duration `koanf:"ttl"`
}

// Log configures the session log file.
type Log struct {
	Dir   string `koanf:"dir"`
	Level string `koanf:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		API:      API{Timeout: 20 * time.Second},
		Comments: Comments{PageSize: 50, SyncLimit: 50},
		History:  History{PageSize: 25},
		Notify:   Notify{TTL: 2400 * time.Millisecond},
		Log:      Log{Level: "info"},
	}
}

// Load builds the configuration in layers: defaults, then the TOML file at
// path (or the default location when path is empty; a missing default file
// is fine), then a .env file, then environment variables.
//
//	REPLYDESK_API_URL     comment service base URL (required)
//	REPLYDESK_ACCOUNT_ID  account whose media are listed
//	REPLYDESK_TOKEN       bearer token
//	REPLYDESK_TOKEN_FILE  path to a file holding the bearer token
//	REPLYDESK_LOG_LEVEL   debug, info, warn, error
//	REPLYDESK_LOG_DIR     directory for session logs
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	_ = godotenv.Load()
	applyEnv(&cfg)

	if cfg.Log.Dir == "" {
		dir, err := defaultDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Log.Dir = filepath.Join(dir, "logs")
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns ~/.config/replydesk/config.toml (honouring XDG_CONFIG_HOME).
func DefaultPath() (string, error) {
	dir, err := defaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func defaultDir() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "replydesk"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "replydesk"), nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("REPLYDESK_API_URL")); v != "" {
		cfg.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("REPLYDESK_ACCOUNT_ID")); v != "" {
		cfg.Account.ID = v
	}
	if v := strings.TrimSpace(os.Getenv("REPLYDESK_TOKEN")); v != "" {
		cfg.API.Token = v
	}
	if v := strings.TrimSpace(os.Getenv("REPLYDESK_TOKEN_FILE")); v != "" {
		cfg.API.TokenPath = v
	}
	if v := strings.TrimSpace(os.Getenv("REPLYDESK_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("REPLYDESK_LOG_DIR")); v != "" {
		cfg.Log.Dir = v
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return ErrMissingBaseURL
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid api.base_url: must be an absolute URL")
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return fmt.Errorf("invalid api.base_url: only http and https are allowed")
	}
	c.API.BaseURL = strings.TrimRight(parsed.String(), "/")

	if c.API.Timeout <= 0 {
		c.API.Timeout = 20 * time.Second
	}
	if c.Comments.PageSize <= 0 {
		return fmt.Errorf("invalid comments.page_size: %d", c.Comments.PageSize)
	}
	if c.Comments.SyncLimit <= 0 {
		return fmt.Errorf("invalid comments.sync_limit: %d", c.Comments.SyncLimit)
	}
	if c.History.PageSize <= 0 {
		return fmt.Errorf("invalid history.page_size: %d", c.History.PageSize)
	}
	if c.Notify.TTL <= 0 {
		c.Notify.TTL = 2400 * time.Millisecond
	}
	return nil
}
