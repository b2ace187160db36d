// Package vision calls an images:annotate endpoint to fetch label and
// localized-object annotations for a photo.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"binsight/internal/common"
	"binsight/internal/model"
)

const (
	defaultEndpoint = "https://vision.googleapis.com"

	maxLabelResults  = 15
	maxObjectResults = 10
)

// Client is an HTTP client for the annotation service. It satisfies
// classify.LabelDetector.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// Config configures a Client.
type Config struct {
	// APIKey authenticates the annotate call. Required.
	APIKey string
	// Endpoint overrides the service base URL (tests, proxies).
	Endpoint string
}

// NewClient creates an annotation client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: vision API key is required", common.ErrMissingConfig)
	}

	endpoint := strings.TrimSuffix(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &Client{
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Request/response shapes for the annotate endpoint.
type annotateRequest struct {
	Requests []annotateItem `json:"requests"`
}

type annotateItem struct {
	Image    imageContent `json:"image"`
	Features []feature    `json:"features"`
}

type imageContent struct {
	Content string `json:"content"`
}

type feature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type annotateResponse struct {
	Responses []struct {
		LabelAnnotations []struct {
			Description string  `json:"description"`
			Score       float64 `json:"score"`
		} `json:"labelAnnotations"`
		LocalizedObjectAnnotations []struct {
			Name  string  `json:"name"`
			Score float64 `json:"score"`
		} `json:"localizedObjectAnnotations"`
	} `json:"responses"`
}

// DetectLabels submits the image and returns the merged label and
// localized-object annotations. One retry pass covers transient transport
// errors; a non-2xx status or an unreadable image is returned as an error
// for the engine to degrade on.
func (c *Client) DetectLabels(ctx context.Context, imageRef string) ([]model.Label, error) {
	encoded, err := encodeImage(imageRef)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	reqBody := annotateRequest{
		Requests: []annotateItem{{
			Image: imageContent{Content: encoded},
			Features: []feature{
				{Type: "LABEL_DETECTION", MaxResults: maxLabelResults},
				{Type: "OBJECT_LOCALIZATION", MaxResults: maxObjectResults},
			},
		}},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var labels []model.Label
	err = common.WithRetry(ctx, func() error {
		var opErr error
		labels, opErr = c.annotate(ctx, jsonBody)
		return opErr
	}, common.RetryOptions{MaxAttempts: 2, InitialDelay: 250 * time.Millisecond})
	if err != nil {
		return nil, err
	}

	return labels, nil
}

func (c *Client) annotate(ctx context.Context, jsonBody []byte) ([]model.Label, error) {
	url := fmt.Sprintf("%s/v1/images:annotate?key=%s", c.endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrVisionUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Bad status is not transient enough to hammer the service over.
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("annotate API error (status %d): %s", resp.StatusCode, string(body)),
			Retryable: false,
		}
	}

	var response annotateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Responses) == 0 {
		return nil, common.ErrNoLabels
	}

	r := response.Responses[0]
	labels := make([]model.Label, 0, len(r.LabelAnnotations)+len(r.LocalizedObjectAnnotations))
	for _, a := range r.LabelAnnotations {
		labels = append(labels, model.Label{Description: a.Description, Score: a.Score})
	}
	for _, a := range r.LocalizedObjectAnnotations {
		labels = append(labels, model.Label{Description: a.Name, Score: a.Score})
	}

	return labels, nil
}

// encodeImage loads the referenced image from disk and base64-encodes it.
// file:// prefixes are tolerated since captured photos arrive as URIs.
func encodeImage(imageRef string) (string, error) {
	path := strings.TrimPrefix(imageRef, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
