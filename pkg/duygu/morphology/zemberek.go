package morphology

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/duygulab/duygu/pkg/duygu/internalerr"
)

// Client calls a remote Zemberek analysis endpoint over JSON/HTTP.
//
// The expected contract is a POST to BaseURL+"/analyze" with {"token": ...}
// returning the analyses for that token, and a GET on BaseURL+"/health" for
// liveness. Requests are plain read-only queries, so a single Client is safe
// for concurrent use.
type Client struct {
	BaseURL string

	HTTPClient *http.Client
}

type analyzeRequest struct {
	Token string `json:"token"`
}

type analyzeResponse struct {
	Results []struct {
		Root      string   `json:"root"`
		Morphemes []string `json:"morphemes"`
	} `json:"results"`
	Error string `json:"error,omitempty"`
}

// Analyze implements Service against the remote endpoint. A non-2xx status or
// transport failure is returned as an error; per-token degradation to "no
// match" is the caller's policy, not the client's.
func (c *Client) Analyze(ctx context.Context, token string) ([]Analysis, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("zemberek: base URL required")
	}

	reqBody, err := json.Marshal(analyzeRequest{Token: token})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/analyze", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("zemberek: analyze %q: %w", token, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("zemberek: analyze %q: HTTP %d", token, resp.StatusCode)
	}

	var payload analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("zemberek: decode response: %w", err)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("zemberek: %s", payload.Error)
	}

	analyses := make([]Analysis, len(payload.Results))
	for i, r := range payload.Results {
		analyses[i] = Analysis{Root: r.Root, Markers: r.Morphemes}
	}
	return analyses, nil
}

// Ping verifies the analysis server is reachable. Callers use it to fail fast
// at startup: every downstream score depends on the service, so an
// unreachable backend is fatal rather than something to degrade around.
func (c *Client) Ping(ctx context.Context) error {
	if c.BaseURL == "" {
		return fmt.Errorf("zemberek: base URL required: %w", internalerr.ErrServiceUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("zemberek: ping %s: %v: %w", c.BaseURL, err, internalerr.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("zemberek: ping %s: HTTP %d: %w", c.BaseURL, resp.StatusCode, internalerr.ErrServiceUnavailable)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}
