package config

import (
	"os"
	"strconv"
)

type Config struct {
	DB_USERNAME string
	DB_PASSWORD string
	DB_HOST     string
	DB_PORT     string
	DB_NAME     string
	DISABLE_TLS string

	// Identity provider (Clerk)
	CLERK_ISSUER           string
	CLERK_AUTHORIZED_PARTY string

	// Signing secret for inbound identity webhooks
	WEBHOOK_SIGNING_SECRET string

	// SMTP relay
	SMTP_HOST         string
	SMTP_PORT         int
	SMTP_USER         string
	SMTP_PASS         string
	SMTP_SENDER_EMAIL string

	TEMPORAL_HOST_PORT string

	CLIENT_ORIGIN string
	SERVER_PORT   string

	// Otel
	OTEL_EXPORTER_OTLP_ENDPOINT string
}

func ReadConfig() *Config {
	smtpPort := 587
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			smtpPort = port
		}
	}

	return &Config{
		DB_USERNAME: os.Getenv("DB_USERNAME"),
		DB_PASSWORD: os.Getenv("DB_PASSWORD"),
		DB_HOST:     os.Getenv("DB_HOST"),
		DB_PORT:     os.Getenv("DB_PORT"),
		DB_NAME:     os.Getenv("DB_NAME"),
		DISABLE_TLS: os.Getenv("DISABLE_TLS"),

		CLERK_ISSUER:           os.Getenv("CLERK_ISSUER"),
		CLERK_AUTHORIZED_PARTY: os.Getenv("CLERK_AUTHORIZED_PARTY"),

		WEBHOOK_SIGNING_SECRET: os.Getenv("WEBHOOK_SIGNING_SECRET"),

		SMTP_HOST:         GetEnvOrDefault("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTP_PORT:         smtpPort,
		SMTP_USER:         os.Getenv("SMTP_USER"),
		SMTP_PASS:         os.Getenv("SMTP_PASS"),
		SMTP_SENDER_EMAIL: os.Getenv("SMTP_SENDER_EMAIL"),

		TEMPORAL_HOST_PORT: GetEnvOrDefault("TEMPORAL_HOST_PORT", "localhost:7233"),

		CLIENT_ORIGIN: GetEnvOrDefault("CLIENT_ORIGIN", "http://localhost:5173"),
		SERVER_PORT:   GetEnvOrDefault("SERVER_PORT", "5000"),

		OTEL_EXPORTER_OTLP_ENDPOINT: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
