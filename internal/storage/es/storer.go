package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/proteus/internal/domain"
	"github.com/DjordjeVuckovic/proteus/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	storer := &Storer{
		client:    client,
		indexName: config.IndexName,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (e *Storer) Save(ctx context.Context, scan domain.Scan) (uuid.UUID, error) {
	scan.Prepare(time.Now().UTC())
	doc := toDocument(scan, time.Now().UTC())

	res, err := e.client.Index(e.indexName).
		Id(doc.ID).
		Document(doc).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index scan: %w", err)
	}

	slog.Debug("Scan indexed", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return scan.ID, nil
}

func (e *Storer) SaveBulk(ctx context.Context, scans []domain.Scan) error {
	if len(scans) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    4,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64
	now := time.Now().UTC()

	for i := range scans {
		scans[i].Prepare(now)
		doc := toDocument(scans[i], now)

		body, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal scan document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(body),
			OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add scan to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(scans),
		"index", e.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d scans", n, len(scans))
	}
	return nil
}

func (e *Storer) Get(ctx context.Context, id uuid.UUID) (*domain.Scan, error) {
	res, err := e.client.Get(e.indexName, id.String()).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}
	if !res.Found {
		return nil, fmt.Errorf("scan %s: %w", id, storage.ErrNotFound)
	}

	var doc ScanDocument
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode scan document: %w", err)
	}

	scan, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("failed to map scan document: %w", err)
	}
	return scan, nil
}

func (e *Storer) Ping(ctx context.Context) error {
	ok, err := e.client.Ping().Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping elasticsearch: %w", err)
	}
	if !ok {
		return fmt.Errorf("elasticsearch ping was not successful")
	}
	return nil
}

func (e *Storer) Close() {}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	shards := "1"
	createRes, err := e.client.Indices.Create(e.indexName).
		Settings(&types.IndexSettings{NumberOfShards: &shards}).
		Mappings(scanMappings()).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}
