package nutrition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealgenie/backend/internal/server/config"
)

func TestAPINinjasClient_Lookup(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "1 apple", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"apple","calories":52.1,"protein_g":0.3,"fat_total_g":0.2,"carbohydrates_total_g":13.8}]`))
	}))
	defer srv.Close()

	c := NewAPINinjasClient(config.API{BaseURL: srv.URL, APIKey: "test-key"})

	items, err := c.Lookup(context.Background(), "1 apple")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "apple", items[0].Name)
	assert.InDelta(t, 52.1, items[0].Calories, 0.001)
}

func TestAPINinjasClient_Lookup_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewAPINinjasClient(config.API{BaseURL: srv.URL, APIKey: "k"})

	_, err := c.Lookup(context.Background(), "apple")
	require.Error(t, err)
}
