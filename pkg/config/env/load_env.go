package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. ENV_PATH, when
// set, overrides defaultPath. A missing file is only an error when APP_ENV is
// "local" or unset; variables already present in the process win.
func LoadDotEnv(defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		appEnv := os.Getenv("APP_ENV")
		if appEnv == "local" || appEnv == "" {
			return err
		}
		slog.Debug("Skipping .env ...", "appEnv", appEnv)
	}

	return nil
}

// Get returns the variable or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
