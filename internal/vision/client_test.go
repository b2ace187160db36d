package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "waste.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not really a jpeg"), 0o600))
	return path
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{APIKey: "test-key", Endpoint: server.URL})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestDetectLabelsMergesAnnotationSets(t *testing.T) {
	imagePath := writeTestImage(t)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/images:annotate", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req annotateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Requests, 1)
		assert.NotEmpty(t, req.Requests[0].Image.Content)
		require.Len(t, req.Requests[0].Features, 2)
		assert.Equal(t, "LABEL_DETECTION", req.Requests[0].Features[0].Type)
		assert.Equal(t, 15, req.Requests[0].Features[0].MaxResults)
		assert.Equal(t, "OBJECT_LOCALIZATION", req.Requests[0].Features[1].Type)
		assert.Equal(t, 10, req.Requests[0].Features[1].MaxResults)

		_, _ = w.Write([]byte(`{
			"responses": [{
				"labelAnnotations": [
					{"description": "Plastic bottle", "score": 0.93},
					{"description": "Waste", "score": 0.88}
				],
				"localizedObjectAnnotations": [
					{"name": "Bottle", "score": 0.81}
				]
			}]
		}`))
	})

	labels, err := client.DetectLabels(context.Background(), imagePath)
	require.NoError(t, err)

	require.Len(t, labels, 3)
	assert.Equal(t, "Plastic bottle", labels[0].Description)
	assert.InDelta(t, 0.93, labels[0].Score, 0.001)
	assert.Equal(t, "Bottle", labels[2].Description)
	assert.InDelta(t, 0.81, labels[2].Score, 0.001)
}

func TestDetectLabelsBadStatus(t *testing.T) {
	imagePath := writeTestImage(t)
	calls := 0

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, "quota exceeded", http.StatusForbidden)
	})

	_, err := client.DetectLabels(context.Background(), imagePath)
	assert.Error(t, err)
	assert.Equal(t, 1, calls, "bad status must not be retried")
}

func TestDetectLabelsEmptyResponses(t *testing.T) {
	imagePath := writeTestImage(t)

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"responses": []}`))
	})

	_, err := client.DetectLabels(context.Background(), imagePath)
	assert.Error(t, err)
}

func TestDetectLabelsMissingImage(t *testing.T) {
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected when the image cannot be read")
	})

	_, err := client.DetectLabels(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	assert.Error(t, err)
}

func TestDetectLabelsStripsFileScheme(t *testing.T) {
	imagePath := writeTestImage(t)

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"responses": [{"labelAnnotations": [{"description": "Glass", "score": 0.9}]}]}`))
	})

	labels, err := client.DetectLabels(context.Background(), "file://"+imagePath)
	require.NoError(t, err)
	assert.Len(t, labels, 1)
}
