// Package config loads service settings from defaults, a YAML file, .env files
// and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv      = "SEO_CONFIG"
	portEnv            = "PORT"
	ginModeEnv         = "GIN_MODE"
	devModeEnv         = "DEV_MODE"
	dataDirEnv         = "DATA_DIR"
	scoringProviderEnv = "SCORING_PROVIDER"
	scoringEndpointEnv = "SCORING_ENDPOINT"
	logLevelEnv        = "LOG_LEVEL"
	logFormatEnv       = "LOG_FORMAT"
)

// Scoring providers.
const (
	ProviderLocal  = "local"
	ProviderRemote = "remote"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all service settings.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Port    string `yaml:"port"`
	GinMode string `yaml:"ginMode"`
	DevMode bool   `yaml:"devMode"`
	DataDir string `yaml:"dataDir"`
}

// AnalysisConfig tunes the orchestrator.
type AnalysisConfig struct {
	MinContentLength int `yaml:"minContentLength"`
	CacheCapacity    int `yaml:"cacheCapacity"`
}

// ScoringConfig selects the scorer implementation.
type ScoringConfig struct {
	Provider string        `yaml:"provider"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// RateLimitConfig is applied per client IP.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"perSecond"`
	Burst     int     `yaml:"burst"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:    "8082",
			GinMode: "release",
			DataDir: "data",
		},
		Analysis: AnalysisConfig{
			MinContentLength: 50,
			CacheCapacity:    50,
		},
		Scoring: ScoringConfig{
			Provider: ProviderLocal,
			Timeout:  10 * time.Second,
		},
		RateLimit: RateLimitConfig{
			PerSecond: 2,
			Burst:     5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadDotEnv loads .env.development, falling back to .env. It returns the file
// that was loaded, or "" when neither exists.
func LoadDotEnv() string {
	for _, name := range []string{".env.development", ".env"} {
		if err := godotenv.Load(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds the configuration. path overrides SEO_CONFIG; when both are
// empty only defaults and the environment apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(portEnv); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv(ginModeEnv); v != "" {
		c.Server.GinMode = v
	}
	if v := os.Getenv(devModeEnv); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, devModeEnv, v)
		}
		c.Server.DevMode = b
	}
	if v := os.Getenv(dataDirEnv); v != "" {
		c.Server.DataDir = v
	}
	if v := os.Getenv(scoringProviderEnv); v != "" {
		c.Scoring.Provider = strings.ToLower(v)
	}
	if v := os.Getenv(scoringEndpointEnv); v != "" {
		c.Scoring.Endpoint = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(logFormatEnv); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// Validate checks the settings for values the service cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if c.Analysis.MinContentLength <= 0 {
		errs = append(errs, errors.New("analysis.minContentLength must be positive"))
	}
	if c.Analysis.CacheCapacity <= 0 {
		errs = append(errs, errors.New("analysis.cacheCapacity must be positive"))
	}
	switch c.Scoring.Provider {
	case ProviderLocal:
	case ProviderRemote:
		if c.Scoring.Endpoint == "" {
			errs = append(errs, errors.New("scoring.endpoint is required for the remote provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown scoring.provider %q", c.Scoring.Provider))
	}
	if c.Scoring.Timeout <= 0 {
		errs = append(errs, errors.New("scoring.timeout must be positive"))
	}
	if c.RateLimit.PerSecond <= 0 || c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("rateLimit.perSecond and rateLimit.burst must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Server.Port
}
