package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxResponseBytes caps how much of a generator response is read.
const maxResponseBytes = 64 << 10

type generateResponse struct {
	Password string `json:"password"`
}

// HTTPGenerator calls a JSON endpoint that turns a prompt into a password.
type HTTPGenerator struct {
	client *http.Client
	url    string
	token  string
}

// NewHTTPGenerator constructs an HTTPGenerator posting to url. token, when set,
// is sent as a bearer credential.
func NewHTTPGenerator(client *http.Client, url, token string) (*HTTPGenerator, error) {
	if url == "" {
		return nil, errors.New("generator url is required")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPGenerator{client: client, url: url, token: token}, nil
}

// Generate posts prompt and returns the password in the response body.
func (g *HTTPGenerator) Generate(ctx context.Context, prompt Prompt) (string, error) {
	body, err := json.Marshal(prompt)
	if err != nil {
		return "", fmt.Errorf("encode prompt: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generator request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generator: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read generator response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generator responded %d: %s", resp.StatusCode, bytes.TrimSpace(payload))
	}

	var out generateResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("decode generator response: %w", err)
	}
	return out.Password, nil
}
