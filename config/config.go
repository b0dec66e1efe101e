package config

import (
	"fmt"
	"log"
	"net"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Host string `validate:"required,hostname_rfc1123|ip"`
	Port string `validate:"required,numeric"`

	// Callback service
	CallbackHost string `validate:"required,hostname_rfc1123|ip"`
	CallbackPort string `validate:"required,numeric"`

	// Shared secret expected in X-Webhook-Token
	WebhookToken string `validate:"required"`

	LogLevel string `validate:"required,oneof=debug info warn error"`
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		Host:         getEnv("HOST", "localhost"),
		Port:         getEnv("PORT", "5000"),
		CallbackHost: getEnv("CALLBACK_HOST", "127.0.0.1"),
		CallbackPort: getEnv("CALLBACK_PORT", "5001"),
		WebhookToken: getEnv("WEBHOOK_TOKEN", "meu-token-secreto"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks the loaded values against their struct tags.
func (c Config) Validate(v *validator.Validate) error {
	return v.Struct(c)
}

// Addr is the host:port the webhook server binds to.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c Config) CallbackBaseURL() string {
	return fmt.Sprintf("http://%s", net.JoinHostPort(c.CallbackHost, c.CallbackPort))
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
