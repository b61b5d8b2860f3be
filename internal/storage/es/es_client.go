package es

import (
	"errors"

	"github.com/elastic/go-elasticsearch/v8"
)

const DefaultIndexName = "protc-scans"

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

func (c ClientConfig) Validate() error {
	if len(c.Addresses) == 0 || c.Addresses[0] == "" {
		return errors.New("elasticsearch addresses are missing")
	}
	if c.IndexName == "" {
		return errors.New("elasticsearch index name is missing")
	}
	return nil
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}
