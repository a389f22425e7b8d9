package config

import (
	"os"
	"time"
)

// AppConfig carries the settings the HTTP layer and auth service need.
// It is loaded once in main and passed down explicitly.
type AppConfig struct {
	Port      string
	JWTSecret string
	TokenTTL  time.Duration
}

type EmailConfig struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	SenderEmail        string
}

func LoadAppConfig() AppConfig {
	ttl := time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}

	return AppConfig{
		Port:      getEnvOrDefault("PORT", "3001"),
		JWTSecret: getEnvOrDefault("JWT_SECRET", "change-me"),
		TokenTTL:  ttl,
	}
}

func LoadEmailConfig() EmailConfig {
	return EmailConfig{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		SenderEmail:        os.Getenv("AWS_SENDER_ADDRESS"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
