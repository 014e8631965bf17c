// Package config loads the avatar server configuration.
//
// Values are resolved in this order, later sources winning:
//
//  1. Built-in defaults (Default)
//  2. An optional TOML file
//  3. AVATAR_* environment variables, including those loaded from a .env file
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/bribes/minecraft-avatar-api/internal/texture"
)

// Duration wraps time.Duration so it can be written as "5s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string such as "1500ms".
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Config stores the avatar server configuration.
type Config struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	TextureBaseURL string   `toml:"texture_base_url"`
	FetchTimeout   Duration `toml:"fetch_timeout"`
	MaxTextureSize string   `toml:"max_texture_size"`
	MaxSize        int      `toml:"max_size"`
	LogLevel       string   `toml:"log_level"`

	// MaxTextureBytes is MaxTextureSize in bytes, filled in by Load.
	MaxTextureBytes int64 `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Host:           "0.0.0.0",
		Port:           8080,
		TextureBaseURL: texture.DefaultBaseURL,
		FetchTimeout:   Duration{10 * time.Second},
		MaxTextureSize: "1M",
		MaxSize:        512,
		LogLevel:       "info",
	}
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load builds the configuration from defaults, the TOML file at path (skipped
// when path is empty) and the process environment.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.Getenv)
}

// LoadWithEnv is Load with a custom environment lookup.
func LoadWithEnv(path string, getenv func(string) string) (*Config, error) {
	c := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, c); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := c.applyEnv(getenv); err != nil {
		return nil, err
	}

	n, err := bytefmt.ToBytes(c.MaxTextureSize)
	if err != nil {
		return nil, fmt.Errorf("invalid max_texture_size %q: %w", c.MaxTextureSize, err)
	}
	c.MaxTextureBytes = int64(n)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadEnvFiles loads KEY=VALUE pairs from .env files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("AVATAR_HOST"); v != "" {
		c.Host = v
	}
	if v := getenv("AVATAR_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid AVATAR_PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := getenv("AVATAR_TEXTURE_BASE_URL"); v != "" {
		c.TextureBaseURL = v
	}
	if v := getenv("AVATAR_FETCH_TIMEOUT"); v != "" {
		if err := c.FetchTimeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("invalid AVATAR_FETCH_TIMEOUT %q: %w", v, err)
		}
	}
	if v := getenv("AVATAR_MAX_TEXTURE_SIZE"); v != "" {
		c.MaxTextureSize = v
	}
	if v := getenv("AVATAR_MAX_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid AVATAR_MAX_SIZE %q: %w", v, err)
		}
		c.MaxSize = size
	}
	if v := getenv("AVATAR_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.TextureBaseURL == "" {
		return errors.New("texture_base_url must not be empty")
	}
	if c.FetchTimeout.Duration < 0 {
		return fmt.Errorf("invalid fetch_timeout %s", c.FetchTimeout)
	}
	if c.MaxSize <= 0 {
		return fmt.Errorf("invalid max_size %d", c.MaxSize)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
