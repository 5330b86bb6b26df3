// Package config loads mazebot settings from defaults, an optional YAML file,
// an optional .env file and MAZEBOT_* environment variables, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazebot/internal/ctxlog"
	"github.com/katalvlaran/mazebot/search"
)

// ErrInvalidConfig is returned when a loaded value fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MAZEBOT_"

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Config holds every setting the commands use.
type Config struct {
	BaseURL    string        `yaml:"base_url"`   // maze API root
	Login      string        `yaml:"login"`      // GitHub login sent when a race starts
	Checkpoint string        `yaml:"checkpoint"` // file of visited maze paths
	Mode       string        `yaml:"mode"`       // search mode name, see search.ParseMode
	Timeout    time.Duration `yaml:"timeout"`    // per-request HTTP timeout
	MaxMazes   int           `yaml:"max_mazes"`  // 0 means until the race ends
	Listen     string        `yaml:"listen"`     // address for the solve service
	LogLevel   string        `yaml:"log_level"`
	LogFormat  string        `yaml:"log_format"`
	Verify     bool          `yaml:"verify"` // replay every answer before use
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BaseURL:    "https://api.noopschallenge.com",
		Login:      "",
		Checkpoint: "mazebot.checkpoint",
		Mode:       search.ModeDepth.String(),
		Timeout:    30 * time.Second,
		MaxMazes:   0,
		Listen:     ":8080",
		LogLevel:   "info",
		LogFormat:  "text",
		Verify:     true,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), DefaultEnvFile when it exists, and the process
// environment.
func Load(path string) (*Config, error) {
	return load(path, DefaultEnvFile, os.LookupEnv)
}

// load is Load with the .env location and environment lookup injected.
func load(path, envFile string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// .env values never override the real environment.
	dotenv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("config: read %s: %w", envFile, err)
		}
	}
	get := func(key string) (string, bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := dotenv[EnvPrefix+key]
		return v, ok
	}

	if err := applyEnv(&cfg, get); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv copies overrides into cfg.
func applyEnv(cfg *Config, get func(string) (string, bool)) error {
	strs := map[string]*string{
		"BASE_URL":   &cfg.BaseURL,
		"LOGIN":      &cfg.Login,
		"CHECKPOINT": &cfg.Checkpoint,
		"MODE":       &cfg.Mode,
		"LISTEN":     &cfg.Listen,
		"LOG_LEVEL":  &cfg.LogLevel,
		"LOG_FORMAT": &cfg.LogFormat,
	}
	for key, dst := range strs {
		if v, ok := get(key); ok {
			*dst = v
		}
	}

	if v, ok := get("TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %sTIMEOUT=%q: %v", ErrInvalidConfig, EnvPrefix, v, err)
		}
		cfg.Timeout = d
	}
	if v, ok := get("MAX_MAZES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sMAX_MAZES=%q: %v", ErrInvalidConfig, EnvPrefix, v, err)
		}
		cfg.MaxMazes = n
	}
	if v, ok := get("VERIFY"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sVERIFY=%q: %v", ErrInvalidConfig, EnvPrefix, v, err)
		}
		cfg.Verify = b
	}
	return nil
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base_url %q is not an absolute URL", ErrInvalidConfig, c.BaseURL)
	}
	if _, err := search.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	if c.MaxMazes < 0 {
		return fmt.Errorf("%w: max_mazes must be ≥ 0, got %d", ErrInvalidConfig, c.MaxMazes)
	}
	if _, ok := ctxlog.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if strings.TrimSpace(c.Checkpoint) == "" {
		return fmt.Errorf("%w: checkpoint path is empty", ErrInvalidConfig)
	}
	return nil
}

// SearchMode returns the parsed Mode. Validate guarantees it succeeds.
func (c *Config) SearchMode() search.Mode {
	m, _ := search.ParseMode(c.Mode)
	return m
}
