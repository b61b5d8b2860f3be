// Package main Proteus Tokenizer API
// @title Proteus Tokenizer API
// @version 0.0.1
// @description Tokenizes protc source text and archives scans
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/proteus/docs"
	"github.com/DjordjeVuckovic/proteus/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/proteus/internal/api/server"
	"github.com/DjordjeVuckovic/proteus/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/proteus/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	store, err := factory.NewStore(context.Background(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create storage", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewPingHealthChecker(store, 2*time.Second)

	s := apiserver.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Proteus Tokenizer API is running")
	})

	router.NewTokenizeRouter(s.Echo, store, sCfg.MaxSourceBytes).Bind()

	err = s.Start()
	slog.Info("Server stopped, cleaning up resources...")
	store.Close()
	if err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
