package env

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	// ConfigVar names the config file to load instead of config.DefaultPath.
	ConfigVar = "SPRINGBALL_CONFIG"
	// LogVar overrides the log file path from the config.
	LogVar = "SPRINGBALL_LOG"
)

// Load reads the given file (e.g. ".env") into the process environment.
// Variables already set in the environment are not overwritten.
// The file may be missing; that is not an error.
func Load(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Lookup returns the value of key, or fallback when it is unset or empty.
func Lookup(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
