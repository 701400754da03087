package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RemoteSource fetches the user's custom words from the account service,
// scoped by the caller's auth token.
type RemoteSource struct {
	BaseURL string
	client  *http.Client
}

// NewRemoteSource creates a remote custom-word source.
func NewRemoteSource(baseURL string) *RemoteSource {
	return &RemoteSource{
		BaseURL: baseURL,
		client:  http.DefaultClient,
	}
}

// CustomWords fetches the words belonging to the token's account. Without a
// token there is nothing to scope the lookup by, so the result is empty.
func (r *RemoteSource) CustomWords(ctx context.Context, authToken string) ([]string, error) {
	if authToken == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", r.BaseURL+"/custom-words", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", authToken))

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var payload struct {
		Words []string `json:"words"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return payload.Words, nil
}
