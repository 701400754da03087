package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// client holds the HTTP plumbing shared by the analyzer service clients.
type client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func (c *client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// checkRequest is the request payload common to all analyzer services.
type checkRequest struct {
	Text string `json:"text"`
	CheckOptions
}

// SpellClient talks to the spelling analyzer service.
type SpellClient struct {
	client
}

// NewSpellClient creates a client for the spelling service.
func NewSpellClient(baseURL, apiKey string) *SpellClient {
	return &SpellClient{client{baseURL: baseURL, apiKey: apiKey, http: http.DefaultClient}}
}

// CheckText checks the spelling of text and returns chunk-local findings.
func (c *SpellClient) CheckText(ctx context.Context, text string, opts CheckOptions) ([]Finding, error) {
	var resp struct {
		Spelling []Finding `json:"spelling"`
	}
	if err := c.post(ctx, "/check", checkRequest{Text: text, CheckOptions: opts}, &resp); err != nil {
		return nil, err
	}
	return resp.Spelling, nil
}

// DetectLanguage asks the spelling service to identify the language of a
// text sample.
func (c *SpellClient) DetectLanguage(ctx context.Context, sample string) (string, error) {
	var resp struct {
		Language string `json:"language"`
	}
	payload := struct {
		Text string `json:"text"`
	}{Text: sample}
	if err := c.post(ctx, "/detect-language", payload, &resp); err != nil {
		return "", err
	}
	return resp.Language, nil
}

// Health probes the spelling service's health endpoint.
func (c *SpellClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status %d", resp.StatusCode)
	}
	return nil
}

// GrammarClient talks to the grammar analyzer service.
type GrammarClient struct {
	client
}

// NewGrammarClient creates a client for the grammar service.
func NewGrammarClient(baseURL, apiKey string) *GrammarClient {
	return &GrammarClient{client{baseURL: baseURL, apiKey: apiKey, http: http.DefaultClient}}
}

// Check runs grammar analysis on text.
func (c *GrammarClient) Check(ctx context.Context, text string, opts CheckOptions) ([]Finding, error) {
	var resp struct {
		Grammar []Finding `json:"grammar"`
	}
	if err := c.post(ctx, "/check", checkRequest{Text: text, CheckOptions: opts}, &resp); err != nil {
		return nil, err
	}
	return resp.Grammar, nil
}

// StyleClient talks to the style analyzer service.
type StyleClient struct {
	client
}

// NewStyleClient creates a client for the style service.
func NewStyleClient(baseURL, apiKey string) *StyleClient {
	return &StyleClient{client{baseURL: baseURL, apiKey: apiKey, http: http.DefaultClient}}
}

// Analyze runs style analysis on text.
func (c *StyleClient) Analyze(ctx context.Context, text string, opts CheckOptions) ([]Finding, error) {
	var resp struct {
		Style []Finding `json:"style"`
	}
	if err := c.post(ctx, "/analyze", checkRequest{Text: text, CheckOptions: opts}, &resp); err != nil {
		return nil, err
	}
	return resp.Style, nil
}

// CodeSpellClient talks to the code-spelling analyzer service.
type CodeSpellClient struct {
	client
}

// NewCodeSpellClient creates a client for the code-spelling service.
func NewCodeSpellClient(baseURL, apiKey string) *CodeSpellClient {
	return &CodeSpellClient{client{baseURL: baseURL, apiKey: apiKey, http: http.DefaultClient}}
}

// CheckCode spell-checks identifiers and comments within a code fragment.
func (c *CodeSpellClient) CheckCode(ctx context.Context, text string, opts CheckOptions) ([]Finding, error) {
	var resp struct {
		CodeSpelling []Finding `json:"codeSpelling"`
	}
	if err := c.post(ctx, "/check", checkRequest{Text: text, CheckOptions: opts}, &resp); err != nil {
		return nil, err
	}
	return resp.CodeSpelling, nil
}
