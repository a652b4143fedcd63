package embeddings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synclinical/tmf-reference-model-transform/pkg/tmf/models"
)

func testRecords(n int) []models.Record {
	records := make([]models.Record, n)
	for i := range records {
		records[i] = models.Record{"ID": string(rune('A' + i%26))}
	}
	return records
}

func TestEmbedRecordsCorrelatesByIndex(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req embeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// Answer in reverse order; the client must re-sort by index.
		resp := embeddingResponse{}
		for i := len(req.Input) - 1; i >= 0; i-- {
			resp.Data = append(resp.Data, embeddingData{
				Index:     i,
				Embedding: []float64{float64(i)},
			})
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	client := NewClient("test-key", nil)
	client.baseURL = srv.URL

	records := testRecords(25)
	require.NoError(t, client.EmbedRecords(context.Background(), records))

	// 25 records in batches of 10 means 3 requests.
	assert.Equal(t, 3, requests)

	for i, rec := range records {
		emb, ok := rec["embeddings"].(models.Embedding)
		require.True(t, ok, "record %d has no embedding", i)
		assert.Equal(t, SourceText(models.Record{"ID": rec["ID"]}), emb.Source)
		assert.Equal(t, []float64{float64(i % batchSize)}, emb.Vector)
	}
}

func TestEmbedRecordsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", nil)
	client.baseURL = srv.URL

	err := client.EmbedRecords(context.Background(), testRecords(1))
	var embErr *EmbeddingError
	require.ErrorAs(t, err, &embErr)
	assert.Equal(t, http.StatusTooManyRequests, embErr.StatusCode)
	assert.Equal(t, "rate limited", embErr.Message)
}

func TestEmbedRecordsMissingIndexFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// One vector short.
		resp := embeddingResponse{Data: []embeddingData{{Index: 0, Embedding: []float64{1}}}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	client := NewClient("test-key", nil)
	client.baseURL = srv.URL

	err := client.EmbedRecords(context.Background(), testRecords(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing vector")
}

func TestEmbedRecordsNoRecords(t *testing.T) {
	client := NewClient("test-key", nil)
	require.NoError(t, client.EmbedRecords(context.Background(), nil))
}
