package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration.
// Server keys are read unprefixed; the other sections are prefixed with
// their name (OPENAI_, SUMMARY_, CREDENTIAL_, REDIS_).
type Config struct {
	Server     ServerConfig
	OpenAI     OpenAIConfig
	Summary    SummaryConfig
	Credential CredentialConfig
	Redis      RedisConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	BodyLimit       string   `envconfig:"BODY_LIMIT" default:"2M"`
}

// OpenAIConfig holds settings for the chat completion endpoint.
// APIKey is optional: it only seeds the credential store on startup.
type OpenAIConfig struct {
	APIKey      string        `split_words:"true"`
	BaseURL     string        `split_words:"true" default:"https://api.openai.com"`
	Model       string        `default:"gpt-4o"`
	Temperature float64       `default:"0.3"`
	MaxTokens   int           `split_words:"true" default:"1500"`
	Timeout     time.Duration `default:"60s"`
}

// SummaryConfig controls response validation
type SummaryConfig struct {
	StrictValidation bool `split_words:"true" default:"false"`
}

// CredentialConfig controls how the stored API key is checked
type CredentialConfig struct {
	RequirePrefix bool `split_words:"true" default:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool   `default:"false"`
	Host     string `default:"localhost"`
	Port     string `default:"6379"`
	Password string
	DB       int `default:"0"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv reads configuration from the process environment only
func FromEnv() (*Config, error) {
	config := &Config{}

	sections := []struct {
		prefix string
		target interface{}
	}{
		{"", &config.Server},
		{"openai", &config.OpenAI},
		{"summary", &config.Summary},
		{"credential", &config.Credential},
		{"redis", &config.Redis},
	}
	for _, s := range sections {
		if err := envconfig.Process(s.prefix, s.target); err != nil {
			return nil, fmt.Errorf("failed to read %s config: %w", strings.ToUpper(s.prefix), err)
		}
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OpenAI.BaseURL) == "" {
		return fmt.Errorf("OPENAI_BASE_URL is required")
	}
	if strings.TrimSpace(c.OpenAI.Model) == "" {
		return fmt.Errorf("OPENAI_MODEL is required")
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be between 0 and 2, got %v", c.OpenAI.Temperature)
	}
	if c.OpenAI.MaxTokens <= 0 {
		return fmt.Errorf("OPENAI_MAX_TOKENS must be positive, got %d", c.OpenAI.MaxTokens)
	}
	if c.OpenAI.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be positive, got %s", c.OpenAI.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %d", c.Server.ShutdownTimeout)
	}
	if c.Redis.Enabled && c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required when REDIS_ENABLED is set")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
