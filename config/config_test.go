package config

import (
	"os"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Set test environment variables
	os.Setenv("HOST", "0.0.0.0")
	os.Setenv("PORT", "9090")
	os.Setenv("CALLBACK_HOST", "callbacks.internal")
	os.Setenv("CALLBACK_PORT", "7001")
	os.Setenv("WEBHOOK_TOKEN", "test-token")
	os.Setenv("LOG_LEVEL", "debug")

	defer func() {
		os.Unsetenv("HOST")
		os.Unsetenv("PORT")
		os.Unsetenv("CALLBACK_HOST")
		os.Unsetenv("CALLBACK_PORT")
		os.Unsetenv("WEBHOOK_TOKEN")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Expected Port to be '9090', got '%s'", cfg.Port)
	}

	if cfg.WebhookToken != "test-token" {
		t.Errorf("Expected WebhookToken to be 'test-token', got '%s'", cfg.WebhookToken)
	}

	if cfg.Addr() != "0.0.0.0:9090" {
		t.Errorf("Expected Addr to be '0.0.0.0:9090', got '%s'", cfg.Addr())
	}

	expectedURL := "http://callbacks.internal:7001"
	if cfg.CallbackBaseURL() != expectedURL {
		t.Errorf("Expected CallbackBaseURL to be '%s', got '%s'", expectedURL, cfg.CallbackBaseURL())
	}
}

func TestLoadWithDefaults(t *testing.T) {
	// Clear environment variables
	os.Clearenv()

	cfg := Load()

	if cfg.Addr() != "localhost:5000" {
		t.Errorf("Expected default Addr to be 'localhost:5000', got '%s'", cfg.Addr())
	}

	if cfg.CallbackBaseURL() != "http://127.0.0.1:5001" {
		t.Errorf("Expected default CallbackBaseURL to be 'http://127.0.0.1:5001', got '%s'", cfg.CallbackBaseURL())
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default LogLevel to be 'info', got '%s'", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	v := validator.New()

	valid := Config{
		Host:         "localhost",
		Port:         "5000",
		CallbackHost: "127.0.0.1",
		CallbackPort: "5001",
		WebhookToken: "secret",
		LogLevel:     "info",
	}
	assert.NoError(t, valid.Validate(v))

	t.Run("non numeric port", func(t *testing.T) {
		cfg := valid
		cfg.Port = "http"
		assert.Error(t, cfg.Validate(v))
	})

	t.Run("empty token", func(t *testing.T) {
		cfg := valid
		cfg.WebhookToken = ""
		assert.Error(t, cfg.Validate(v))
	})

	t.Run("unknown log level", func(t *testing.T) {
		cfg := valid
		cfg.LogLevel = "verbose"
		assert.Error(t, cfg.Validate(v))
	})
}
