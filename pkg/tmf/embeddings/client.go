// Package embeddings generates vector embeddings for reference-model
// records through the OpenAI embeddings API.
package embeddings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/models"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "text-embedding-3-small"

	// batchSize keeps each request inside the remote token budget.
	batchSize = 10

	requestTimeout = 60 * time.Second
)

// Client calls the embeddings API in fixed-size batches.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
	log     *zap.Logger
}

// NewClient returns a client authenticated with apiKey. logger may be nil.
func NewClient(apiKey string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		http:    &http.Client{Timeout: requestTimeout},
		log:     logger,
	}
}

// EmbeddingError reports a failed remote call with the remote's message.
type EmbeddingError struct {
	StatusCode int
	Message    string
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embeddings request failed (HTTP %d): %s", e.StatusCode, e.Message)
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingData struct {
	Index     int       `json:"index"`
	Embedding []float64 `json:"embedding"`
}

type embeddingResponse struct {
	Data []embeddingData `json:"data"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// EmbedRecords computes a vector for every record and attaches it under
// the "embeddings" key. Batches are issued synchronously in order; any
// failure aborts the whole run and already-computed batches are discarded
// by the caller along with the records.
func (c *Client) EmbedRecords(ctx context.Context, records []models.Record) error {
	sources := make([]string, len(records))
	for i, rec := range records {
		sources[i] = SourceText(rec)
	}

	for start := 0; start < len(sources); start += batchSize {
		end := min(start+batchSize, len(sources))
		batch := sources[start:end]
		c.log.Info("embedding batch",
			zap.Int("start", start),
			zap.Int("size", len(batch)))

		vectors, err := c.embedBatch(ctx, batch)
		if err != nil {
			return err
		}
		for i, vec := range vectors {
			if vec == nil {
				return fmt.Errorf("embeddings response missing vector for input %d", start+i)
			}
			records[start+i]["embeddings"] = models.Embedding{Source: batch[i], Vector: vec}
		}
	}
	return nil
}

// embedBatch issues one request and correlates results through the
// response index field. The response array order is not trusted.
func (c *Client) embedBatch(ctx context.Context, inputs []string) ([][]float64, error) {
	body, err := json.Marshal(embeddingRequest{Model: c.model, Input: inputs})
	if err != nil {
		return nil, fmt.Errorf("marshal embeddings request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build embeddings request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embeddings request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read embeddings response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		message := strings.TrimSpace(string(data))
		var remote apiError
		if json.Unmarshal(data, &remote) == nil && remote.Error.Message != "" {
			message = remote.Error.Message
		}
		return nil, &EmbeddingError{StatusCode: resp.StatusCode, Message: message}
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode embeddings response: %w", err)
	}

	vectors := make([][]float64, len(inputs))
	for _, d := range parsed.Data {
		if d.Index < 0 || d.Index >= len(inputs) {
			return nil, fmt.Errorf("embeddings response index %d out of range", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}
