package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTestConfigDefaults(t *testing.T) {
	for _, key := range []string{"TEST_IMAGE_REPO", "TEST_HOST_PORT", "TEST_RETRY_DELAY", "RUN_INTEGRATION_TESTS"} {
		t.Setenv(key, "")
	}

	config := NewTestConfig()

	assert.Equal(t, "greeter-e2e", config.ImageRepository)
	assert.Equal(t, 18080, config.HostPort)
	assert.Equal(t, time.Second, config.RetryDelay)
	assert.False(t, config.RunIntegration)
}

func TestNewTestConfigOverrides(t *testing.T) {
	t.Setenv("TEST_HOST_PORT", "28080")
	t.Setenv("TEST_RETRY_DELAY", "250ms")
	t.Setenv("TEST_SKIP_CLEANUP", "true")

	config := NewTestConfig()

	assert.Equal(t, 28080, config.HostPort)
	assert.Equal(t, 250*time.Millisecond, config.RetryDelay)
	assert.True(t, config.SkipCleanup)
}

func TestNewTestConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("TEST_MAX_RETRIES", "lots")
	t.Setenv("TEST_RETRY_DELAY", "soon")
	t.Setenv("RUN_INTEGRATION_TESTS", "maybe")

	config := NewTestConfig()

	assert.Equal(t, 30, config.MaxRetries)
	assert.Equal(t, time.Second, config.RetryDelay)
	assert.False(t, config.RunIntegration)
}
