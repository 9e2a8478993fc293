package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"time"

	"study-planner/internal/config"
	"study-planner/internal/errors"
)

// ErrNotConfigured is returned when no insight endpoint is configured. The
// CLI downgrades it to a console warning; it must never crash a command.
var ErrNotConfigured = errors.NewInsightError("no insight endpoint configured, set SP_INSIGHT_URL", nil)

// GenerateRequest is one call to the text-generation collaborator.
type GenerateRequest struct {
	SystemPrompt string
	UserPrompt   string
}

// Client is the text-generation collaborator. Prompt wording is up to the
// caller; the client owns the transport envelope only.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	Available(ctx context.Context) bool
}

// httpClient implements Client against an Ollama-compatible HTTP endpoint.
type httpClient struct {
	cfg  config.InsightConfig
	http *http.Client
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.InsightConfig) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// generateRequest is the JSON body sent to POST /api/generate.
type generateRequest struct {
	Model  string `json:"model"`
	System string `json:"system,omitempty"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse is the JSON body returned by POST /api/generate
// (non-streaming).
type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *httpClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if c.cfg.URL == "" {
		return "", ErrNotConfigured
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	data, err := json.Marshal(generateRequest{
		Model:  c.cfg.Model,
		System: req.SystemPrompt,
		Prompt: req.UserPrompt,
		Stream: false,
	})
	if err != nil {
		return "", errors.NewInsightError("encoding request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+"/api/generate", bytes.NewReader(data))
	if err != nil {
		return "", errors.NewInsightError("creating request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", errors.NewTimeoutError("insight generation", c.cfg.Timeout)
		}
		return "", errors.NewInsightError("calling insight endpoint", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", errors.NewInsightError("reading response", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return "", errors.NewInsightError("insight endpoint returned status "+httpResp.Status, nil)
	}

	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.NewInsightError("decoding response", err)
	}
	return resp.Response, nil
}

// Available reports whether the endpoint answers at all.
func (c *httpClient) Available(ctx context.Context) bool {
	if c.cfg.URL == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
