package config

import (
	"fmt"
	"os"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port string

	JWTSecret string

	SMSAPIURL   string
	SMSAPIToken string // empty disables sending entirely
	SMSSenderID string
	SMSCurrency string
}

func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		SMSAPIURL:   getenv("SMS_API_URL", "https://api.mobilesasa.com/v1/send/message"),
		SMSAPIToken: os.Getenv("SMS_API_TOKEN"),
		SMSSenderID: getenv("SMS_SENDER_ID", "MOBILESASA"),
		SMSCurrency: getenv("SMS_CURRENCY", "KES"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
