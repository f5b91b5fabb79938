package config

import "os"

const (
	// APIKeyEnv is the environment variable holding the API key.
	APIKeyEnv = "API_KEY"
	// DefaultAPIKey is used when APIKeyEnv is not set at all.
	DefaultAPIKey = "default-key"
)

// Config holds the values resolved at process start.
// It is never re-read after Load returns.
type Config struct {
	APIKey string
}

// Load resolves the configuration from the process environment.
func Load() Config {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom resolves the configuration using lookup in place of os.LookupEnv.
// A variable that is set to the empty string counts as set.
func LoadFrom(lookup func(string) (string, bool)) Config {
	return Config{
		APIKey: lookupOrDefault(lookup, APIKeyEnv, DefaultAPIKey),
	}
}

// lookupOrDefault returns the variable's value if it is present, or a default.
func lookupOrDefault(lookup func(string) (string, bool), key, defaultValue string) string {
	if value, ok := lookup(key); ok {
		return value
	}
	return defaultValue
}
