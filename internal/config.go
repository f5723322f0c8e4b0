package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"http_server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Security      SecurityConfig      `mapstructure:"security"`
	Assistant     AssistantConfig     `mapstructure:"assistant"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Source          string        `mapstructure:"source"`
}

type SecurityConfig struct {
	SessionSecret string        `mapstructure:"session_secret"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	BCryptCost    int           `mapstructure:"bcrypt_cost"`
}

type AssistantConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ----------------- ENV LOADING -----------------

// LoadConfigFromEnv builds a Config purely from environment variables.
// Used for container deployments where no config file is mounted.
func LoadConfigFromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              getEnvAsInt("HTTP_SERVER_PORT", 8080),
			BaseURL:           getEnv("HTTP_SERVER_BASE_URL", "http://localhost:8080"),
			AllowedOrigins:    getEnv("HTTP_SERVER_ALLOWED_ORIGINS", "*"),
			ReadHeaderTimeout: getEnvAsDuration("HTTP_SERVER_READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       getEnvAsDuration("HTTP_SERVER_READ_TIMEOUT", 15*time.Second),
			IdleTimeout:       getEnvAsDuration("HTTP_SERVER_IDLE_TIMEOUT", 60*time.Second),
			WriteTimeout:      getEnvAsDuration("HTTP_SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			MaxOpenConns:    getEnvAsInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: getEnvAsDuration("DATABASE_CONN_MAX_IDLE_TIME", 5*time.Minute),
			Source:          getEnv("DATABASE_SOURCE", ""),
		},
		Security: SecurityConfig{
			SessionSecret: getEnv("SECURITY_SESSION_SECRET", ""),
			SessionTTL:    getEnvAsDuration("SECURITY_SESSION_TTL", 7*24*time.Hour),
			BCryptCost:    getEnvAsInt("SECURITY_BCRYPT_COST", 10),
		},
		Assistant: AssistantConfig{
			BaseURL: getEnv("ASSISTANT_BASE_URL", "http://llama-api:8000"),
			Timeout: getEnvAsDuration("ASSISTANT_TIMEOUT", 60*time.Second),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOGGING_LEVEL", "info"),
				Format: getEnv("LOGGING_FORMAT", "json"),
			},
		},
	}
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("database config: %v", err))
	}

	if err := c.Security.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("security config: %v", err))
	}

	if err := c.Assistant.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("assistant config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.AllowedOrigins != "" {
		origins := strings.Split(c.AllowedOrigins, ",")
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin == "*" {
				continue
			}
			if _, err := url.Parse(origin); err != nil {
				return fmt.Errorf("invalid allowed origin %s: %w", origin, err)
			}
		}
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.Source == "" {
		return errors.New("source is required")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return errors.New("max_idle_conns cannot be greater than max_open_conns")
	}
	return nil
}

func (c *DatabaseConfig) GetDSN() string {
	return c.Source
}

func (c *SecurityConfig) Validate() error {
	if len(c.SessionSecret) < 32 {
		return errors.New("session secret must be at least 32 characters")
	}
	if c.SessionTTL <= 0 {
		return errors.New("session_ttl must be positive")
	}
	if c.BCryptCost < 10 || c.BCryptCost > 15 {
		return errors.New("bcrypt_cost must be between 10 and 15")
	}
	return nil
}

func (c *AssistantConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	return nil
}
