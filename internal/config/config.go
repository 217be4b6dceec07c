// Package config centralises configuration parsing for the activities service.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config captures runtime configuration values for the activities service.
type Config struct {
	HTTPAddress     string
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPUseTLS      bool
	FromEmail       string
	FromName        string
	NotifyQueueSize int
}

// Load reads environment variables into Config, applying sensible defaults.
// SMTP_HOST and FROM_EMAIL carry no default; leaving either unset disables
// email notifications.
func Load() Config {
	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        getIntEnv("SMTP_PORT", 587),
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		SMTPUseTLS:      getBoolEnv("SMTP_USE_TLS", true),
		FromEmail:       getEnv("FROM_EMAIL", ""),
		FromName:        getEnv("FROM_NAME", "Mergington High School Activities"),
		NotifyQueueSize: getIntEnv("NOTIFY_QUEUE_SIZE", 64),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getBoolEnv treats any set, non-empty value other than the literal "false"
// (case-insensitive) as true, so SMTP_USE_TLS=0 still means TLS on.
func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return !strings.EqualFold(strings.TrimSpace(value), "false")
	}
	return fallback
}
