package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/proteus/pkg/config/env"
	"github.com/DjordjeVuckovic/proteus/pkg/utils"
)

const DefaultMaxSourceBytes = 1 << 20

type Config struct {
	Port           string
	UseHttp2       bool
	CorsOrigins    []string
	MaxSourceBytes int
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv("cmd/protc_api/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	useHttp2Str := os.Getenv("USE_HTTP2")
	useHttp2 := useHttp2Str == "true"

	port := env.Get("PORT", "8080")
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitList(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxSource := DefaultMaxSourceBytes
	if v := os.Getenv("MAX_SOURCE_BYTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid MAX_SOURCE_BYTES %q: must be a positive number", v)
		}
		maxSource = n
	}

	return &Config{
		Port:           port,
		UseHttp2:       useHttp2,
		CorsOrigins:    origins,
		MaxSourceBytes: maxSource,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
