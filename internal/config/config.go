package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultConfigPath is read when CAMPUS_CONFIG is not set.
const DefaultConfigPath = "config.yaml"

// Config holds all configuration for the assistant. Values come from an
// optional YAML file; environment variables always win.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	Mongo       MongoConfig       `yaml:"mongo"`
	Redis       RedisConfig       `yaml:"redis"`
	Retrieval   RetrievalConfig   `yaml:"retrieval"`
	Context     ContextConfig     `yaml:"context"`
	Timeouts    TimeoutConfig     `yaml:"timeouts"`
	Translation TranslationConfig `yaml:"translation"`
	CORS        CORSConfig        `yaml:"cors"`
}

type ServerConfig struct {
	Port            string `yaml:"port" env:"PORT" env-default:"8080"`
	ShutdownSeconds int    `yaml:"shutdown_seconds" env:"SHUTDOWN_SECONDS" env-default:"30"`
}

type LogConfig struct {
	// Format is "production" (JSON) or "development" (console).
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"production"`
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type MongoConfig struct {
	URI      string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"campus_ai"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"-" env:"REDIS_PASSWORD"` // Secret - not in YAML
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type RetrievalConfig struct {
	ConfidenceThreshold float64 `yaml:"confidence_threshold" env:"CONFIDENCE_THRESHOLD" env-default:"0.7"`
	FallbackThreshold   float64 `yaml:"fallback_threshold" env:"FALLBACK_THRESHOLD" env-default:"0.5"`
	CacheTTLSeconds     int     `yaml:"cache_ttl_seconds" env:"CACHE_TTL_SECONDS" env-default:"3600"`
}

type ContextConfig struct {
	TTLSeconds int `yaml:"ttl_seconds" env:"CONTEXT_TTL_SECONDS" env-default:"3600"`
	WindowSize int `yaml:"window_size" env:"CONTEXT_WINDOW_SIZE" env-default:"5"`
	// SyncUpdates writes the context before the reply is returned instead of
	// handing the update to the background task runner.
	SyncUpdates bool `yaml:"sync_updates" env:"CONTEXT_SYNC_UPDATES" env-default:"false"`
}

type TimeoutConfig struct {
	CacheMS     int `yaml:"cache_ms" env:"CACHE_TIMEOUT_MS" env-default:"250"`
	StoreMS     int `yaml:"store_ms" env:"STORE_TIMEOUT_MS" env-default:"2000"`
	TranslateMS int `yaml:"translate_ms" env:"TRANSLATE_TIMEOUT_MS" env-default:"3000"`
}

func (t TimeoutConfig) Cache() time.Duration     { return time.Duration(t.CacheMS) * time.Millisecond }
func (t TimeoutConfig) Store() time.Duration     { return time.Duration(t.StoreMS) * time.Millisecond }
func (t TimeoutConfig) Translate() time.Duration { return time.Duration(t.TranslateMS) * time.Millisecond }

// TranslationConfig points at an OpenAI-compatible chat completion endpoint
// used as the machine-translation backend.
type TranslationConfig struct {
	APIKey  string `yaml:"-" env:"TRANSLATION_API_KEY"` // Never serialize
	BaseURL string `yaml:"base_url" env:"TRANSLATION_BASE_URL" env-default:"https://api.openai.com/v1"`
	Model   string `yaml:"model" env:"TRANSLATION_MODEL" env-default:"gpt-4o-mini"`
}

// IsEnabled returns true if the translation backend is configured.
func (c *TranslationConfig) IsEnabled() bool {
	return c.APIKey != ""
}

type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET, POST, PUT, DELETE, OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type, Authorization"`
}

// Load reads the YAML file named by CAMPUS_CONFIG (or config.yaml) when it
// exists and applies environment overrides. Without a file only the
// environment and defaults are used.
func Load() (*Config, error) {
	path := os.Getenv("CAMPUS_CONFIG")
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := &Config{}
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that defaults cannot make safe.
func (c *Config) Validate() error {
	r := c.Retrieval
	if r.ConfidenceThreshold < 0 || r.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold must be within [0,1], got %v", r.ConfidenceThreshold)
	}
	if r.FallbackThreshold < 0 || r.FallbackThreshold > 1 {
		return fmt.Errorf("fallback_threshold must be within [0,1], got %v", r.FallbackThreshold)
	}
	if r.CacheTTLSeconds <= 0 {
		return errors.New("cache_ttl_seconds must be positive")
	}
	if c.Context.TTLSeconds <= 0 {
		return errors.New("context ttl_seconds must be positive")
	}
	if c.Context.WindowSize <= 0 {
		return errors.New("context window_size must be positive")
	}
	return nil
}

var credentialsPattern = regexp.MustCompile(`://[^:/@]+:[^@]+@`)

// SanitizeURI hides credentials embedded in a connection string so it can be logged.
func SanitizeURI(uri string) string {
	return credentialsPattern.ReplaceAllString(uri, "://[REDACTED]@")
}
