// Package elastic stores search-index documents in Elasticsearch.
package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"

	"github.com/heartmarshall/customtrack-backend/internal/config"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// Indexer writes one document per entity, keyed by entity id.
type Indexer struct {
	client *elasticsearch.Client
	index  string
}

// NewIndexer creates an Elasticsearch client from cfg.
func NewIndexer(cfg config.ElasticsearchConfig) (*Indexer, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.AddressList(),
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: new client: %w", err)
	}
	return &Indexer{client: client, index: cfg.Index}, nil
}

type document struct {
	EntityID  uuid.UUID `json:"entity_id"`
	Kind      string    `json:"kind"`
	Vector    []float32 `json:"vector"`
	Dimension int       `json:"dimension"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Upsert indexes the vector of entityID, replacing any previous document.
func (i *Indexer) Upsert(ctx context.Context, kind domain.Kind, entityID uuid.UUID, vector []float32, at time.Time) error {
	data, err := json.Marshal(document{
		EntityID:  entityID,
		Kind:      string(kind),
		Vector:    vector,
		Dimension: len(vector),
		UpdatedAt: at.UTC(),
	})
	if err != nil {
		return fmt.Errorf("elasticsearch: marshal document %s: %w", entityID, err)
	}

	req := esapi.IndexRequest{
		Index:      i.index,
		DocumentID: entityID.String(),
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("elasticsearch: index %s: %w", entityID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch: index %s: %s", entityID, res.String())
	}
	return nil
}

// Delete removes the document of entityID. A missing document is not an error.
func (i *Indexer) Delete(ctx context.Context, entityID uuid.UUID) error {
	req := esapi.DeleteRequest{
		Index:      i.index,
		DocumentID: entityID.String(),
	}

	res, err := req.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("elasticsearch: delete %s: %w", entityID, err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("elasticsearch: delete %s: %s", entityID, res.String())
	}
	return nil
}
