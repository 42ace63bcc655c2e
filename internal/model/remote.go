package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// RemoteClassifier delegates predictions to a model server that keeps the
// original estimator loaded.
type RemoteClassifier struct {
	baseURL string
	client  *http.Client
}

// NewRemoteClassifier creates a client for the model server at baseURL.
func NewRemoteClassifier(baseURL string, timeout time.Duration) *RemoteClassifier {
	return &RemoteClassifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type remoteRequest struct {
	Features map[string]float64 `json:"features"`
}

type remoteResponse struct {
	Label  *int   `json:"label"`
	Error  string `json:"error,omitempty"`
	Detail string `json:"details,omitempty"`
}

// Predict sends one row to the model server and returns its label.
func (c *RemoteClassifier) Predict(ctx context.Context, row map[string]float64) (int, error) {
	body, err := json.Marshal(remoteRequest{Features: row})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal model request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create model request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("model service request failed: %w", err)
	}
	defer resp.Body.Close()

	var out remoteResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && out.Error != "" {
			if out.Detail != "" {
				return 0, fmt.Errorf("model service returned status %d: %s: %s", resp.StatusCode, out.Error, out.Detail)
			}
			return 0, fmt.Errorf("model service returned status %d: %s", resp.StatusCode, out.Error)
		}
		return 0, fmt.Errorf("model service returned status: %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return 0, fmt.Errorf("failed to decode model response: %w", decodeErr)
	}
	if out.Label == nil {
		return 0, fmt.Errorf("%w: response has no label", ErrUnexpectedOutput)
	}

	return *out.Label, nil
}

// Ping checks the model server health endpoint.
func (c *RemoteClassifier) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create health request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("model service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model service health returned status: %d", resp.StatusCode)
	}
	return nil
}

// Close is a no-op; the HTTP client holds no model state.
func (c *RemoteClassifier) Close() error {
	return nil
}
