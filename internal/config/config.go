package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Mail     MailConfig     `yaml:"mail"`
	Sending  SendingConfig  `yaml:"sending"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"min=1,max=65535"`
	Host           string   `yaml:"host"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// GetHost returns the server host, with ECS detection
func (c ServerConfig) GetHost() string {
	// On ECS/container, listen on all interfaces
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// Addr returns host:port for the HTTP listener.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.GetHost(), c.Port)
}

// DatabaseConfig holds the PostgreSQL connection settings.
type DatabaseConfig struct {
	URL                    string `yaml:"url" validate:"required"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeSeconds int    `yaml:"conn_max_lifetime_seconds"`
}

// ConnMaxLifetime returns the configured connection lifetime as a duration
func (c DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifetimeSeconds) * time.Second
}

// RedisConfig holds the Redis connection used for token revocation.
// An empty URL keeps revocations in process memory.
type RedisConfig struct {
	URL string `yaml:"url"`
}

// AuthConfig holds bearer-token and password hashing settings.
type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret" validate:"required,min=16"`
	TokenTTLHours int    `yaml:"token_ttl_hours" validate:"min=1"`
	BcryptCost    int    `yaml:"bcrypt_cost" validate:"min=4,max=31"`
	CookieName    string `yaml:"cookie_name"`
}

// TokenTTL returns the configured token lifetime as a duration
func (c AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// MailConfig holds the outbound transport settings. Exactly one transport
// is active per process; From and APIKey are fixed for its lifetime.
type MailConfig struct {
	Transport       string    `yaml:"transport" validate:"oneof=sendgrid ses resend log"`
	From            string    `yaml:"from" validate:"required,email"`
	APIKey          string    `yaml:"api_key" validate:"required_if=Transport sendgrid,required_if=Transport resend"`
	SendGridBaseURL string    `yaml:"sendgrid_base_url"`
	TimeoutSeconds  int       `yaml:"timeout_seconds" validate:"min=1"`
	SES             SESConfig `yaml:"ses"`
}

// Timeout returns the configured timeout as a duration
func (c MailConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SESConfig holds AWS SES API configuration
type SESConfig struct {
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// SendingConfig holds switches for the send workflow.
type SendingConfig struct {
	// EnforceOwnership rejects sends that reference another user's group or
	// template. Off by default: groups and templates resolve by id alone.
	EnforceOwnership bool `yaml:"enforce_ownership"`
}

// LoggingConfig holds structured logger settings.
type LoggingConfig struct {
	Level            string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	DisableRedaction bool   `yaml:"disable_redaction"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetimeSeconds == 0 {
		cfg.Database.ConnMaxLifetimeSeconds = 300
	}
	if cfg.Auth.TokenTTLHours == 0 {
		cfg.Auth.TokenTTLHours = 24
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 10
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = "token"
	}
	if cfg.Mail.Transport == "" {
		cfg.Mail.Transport = "sendgrid"
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = "mailbulksender@gmail.com"
	}
	if cfg.Mail.SendGridBaseURL == "" {
		cfg.Mail.SendGridBaseURL = "https://api.sendgrid.com/v3"
	}
	if cfg.Mail.TimeoutSeconds == 0 {
		cfg.Mail.TimeoutSeconds = 30
	}
	if cfg.Mail.SES.Region == "" {
		cfg.Mail.SES.Region = "us-east-1"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks the populated struct against its validation tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so secrets can live in .env locally and in real env vars on ECS.
// The merged result is validated.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("MAIL_TRANSPORT"); v != "" {
		cfg.Mail.Transport = v
	}
	if v := os.Getenv("MAIL_FROM"); v != "" {
		cfg.Mail.From = v
	}
	// Mail_Secret is the legacy spelling still present in older .env files.
	if v := os.Getenv("Mail_Secret"); v != "" {
		cfg.Mail.APIKey = v
	}
	if v := os.Getenv("MAIL_SECRET"); v != "" {
		cfg.Mail.APIKey = v
	}
	if v := os.Getenv("RESEND_API_KEY"); v != "" && cfg.Mail.Transport == "resend" {
		cfg.Mail.APIKey = v
	}
	if v := os.Getenv("AWS_SES_ACCESS_KEY"); v != "" {
		cfg.Mail.SES.AccessKey = v
	}
	if v := os.Getenv("AWS_SES_SECRET_KEY"); v != "" {
		cfg.Mail.SES.SecretKey = v
	}
	if v := os.Getenv("AWS_SES_REGION"); v != "" {
		cfg.Mail.SES.Region = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
