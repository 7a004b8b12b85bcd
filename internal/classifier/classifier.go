// Package classifier talks to the external image classification model.
// The model itself is an opaque artifact served by a separate inference
// process; this client sends it raw image bytes and maps the returned
// score vector onto the label list loaded at startup.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// UnknownLabel is the explicit degraded result used when the model
// predicts an index outside the known label list or returns no scores.
// Requests never fail because of it.
const UnknownLabel = "Unknown Food"

// Client is an HTTP client for the inference server.
type Client struct {
	baseURL string
	labels  []string
	client  *http.Client
}

// New builds a classifier client for the given inference server base URL
// and label list.  One label per class, in model output order: score
// index i names labels[i].
func New(baseURL string, labels []string) *Client {
	return &Client{
		baseURL: baseURL,
		labels:  labels,
		client: &http.Client{
			Timeout: 30 * time.Second, // a forward pass can be slow on CPU
		},
	}
}

// predictResponse mirrors the inference server's reply: one confidence
// score per class.
type predictResponse struct {
	Scores []float64 `json:"scores"`
}

// Classify runs one forward pass for the image at path and returns the
// predicted label.  The highest-confidence index maps directly onto the
// label list; an index beyond the list degrades to UnknownLabel rather
// than failing the request.  Only transport-level problems return an
// error.
func (c *Client) Classify(ctx context.Context, imagePath string) (string, error) {
	img, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/predict", bytes.NewReader(img))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errors.New("inference server: " + resp.Status + ": " + string(body))
	}

	var pr predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return "", fmt.Errorf("decode scores: %w", err)
	}

	idx := argmax(pr.Scores)
	if idx < 0 || idx >= len(c.labels) {
		return UnknownLabel, nil
	}
	return c.labels[idx], nil
}

// argmax returns the index of the highest score, -1 for an empty vector.
func argmax(scores []float64) int {
	best := -1
	for i, s := range scores {
		if best < 0 || s > scores[best] {
			best = i
		}
	}
	return best
}
