package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"leatherworking_backend/internal/models"
)

const productIndexName = "products"

// ProductIndex mirrors the product collection into a search index. Index and
// Remove are best effort: a search outage must never fail a write request.
type ProductIndex interface {
	Index(ctx context.Context, p models.Product)
	Remove(ctx context.Context, id string)
	Search(ctx context.Context, query string) ([]models.Product, error)
}

type ElasticProductIndex struct {
	client *elasticsearch.Client
}

func NewElasticProductIndex(client *elasticsearch.Client) *ElasticProductIndex {
	return &ElasticProductIndex{client: client}
}

func (e *ElasticProductIndex) Index(ctx context.Context, p models.Product) {
	data, err := json.Marshal(p)
	if err != nil {
		log.Println("❌ Elastic marshal error:", err)
		return
	}

	req := esapi.IndexRequest{
		Index:      productIndexName,
		DocumentID: p.ID.Hex(),
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, e.client)
	if err != nil {
		log.Println("❌ Elastic index error:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic returned an error for %s: %s", p.Name, res.String())
	}
}

func (e *ElasticProductIndex) Remove(ctx context.Context, id string) {
	req := esapi.DeleteRequest{
		Index:      productIndexName,
		DocumentID: id,
	}

	res, err := req.Do(ctx, e.client)
	if err != nil {
		log.Println("❌ Elastic delete error:", err)
		return
	}
	res.Body.Close()
}

// Search runs a multi_match over the indexed product fields.
func (e *ElasticProductIndex) Search(ctx context.Context, query string) ([]models.Product, error) {
	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description", "category"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("encoding search query: %w", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndexName},
		Body:  &buf,
	}
	res, err := req.Do(ctx, e.client)
	if err != nil {
		return nil, fmt.Errorf("elastic search request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.New("elastic search failed: " + res.String())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	products := make([]models.Product, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		products = append(products, hit.Source)
	}
	return products, nil
}
