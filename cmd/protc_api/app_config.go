package main

import (
	"fmt"

	"github.com/DjordjeVuckovic/proteus/internal/storage/factory"
)

type AppConfig struct {
	StorageConfig *factory.StorageConfig
}

type AppSettings struct{}

func NewAppConfig() *AppSettings {
	return &AppSettings{}
}

func (s *AppSettings) Load() (*AppConfig, error) {
	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("storage config: %w", err)
	}
	return &AppConfig{StorageConfig: storageCfg}, nil
}
