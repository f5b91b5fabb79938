package e2e

import (
	"os"
	"strconv"
	"time"
)

// TestConfig holds all configurable test parameters.
// Values can be set via environment variables or fall back to sensible defaults.
type TestConfig struct {
	// Image build
	ImageRepository string
	BuildContext    string
	Dockerfile      string

	// Container networking
	HostPort int

	// Polling
	MaxRetries int
	RetryDelay time.Duration

	// Feature flags
	RunIntegration bool
	SkipCleanup    bool
}

// NewTestConfig creates a test configuration from environment variables with defaults.
func NewTestConfig() *TestConfig {
	return &TestConfig{
		ImageRepository: getEnvOrDefault("TEST_IMAGE_REPO", "greeter-e2e"),
		BuildContext:    getEnvOrDefault("TEST_BUILD_CONTEXT", "../.."),
		Dockerfile:      getEnvOrDefault("TEST_DOCKERFILE", "../../app/go/Dockerfile"),

		HostPort: getEnvAsInt("TEST_HOST_PORT", 18080),

		MaxRetries: getEnvAsInt("TEST_MAX_RETRIES", 30),
		RetryDelay: getEnvAsDuration("TEST_RETRY_DELAY", time.Second),

		RunIntegration: getEnvAsBool("RUN_INTEGRATION_TESTS", false),
		SkipCleanup:    getEnvAsBool("TEST_SKIP_CLEANUP", false),
	}
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment variable as an integer or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the environment variable as a duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvAsBool returns the environment variable as a boolean or a default.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}
