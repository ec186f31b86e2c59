package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	RequestLogging bool
}

// Addr returns the host:port pair the server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load returns application configuration loaded from environment variables
func Load() (*Config, error) {
	port, err := parsePort(getEnvWithDefault("PORT", "3000"))
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := time.ParseDuration(getEnvWithDefault("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	requestLogging, err := strconv.ParseBool(getEnvWithDefault("LOG_REQUESTS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_REQUESTS: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host:            getEnvWithDefault("HOST", ""),
			Port:            port,
			ShutdownTimeout: shutdownTimeout,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		},
		Log: LogConfig{
			RequestLogging: requestLogging,
		},
	}, nil
}

func parsePort(value string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid PORT %q: %w", value, err)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("invalid PORT %q: out of range", value)
	}
	return port, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
