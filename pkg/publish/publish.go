// Package publish uploads an exported document to a persistent-URL host.
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Publisher accepts a JSON document and returns a retrievable URL for it.
type Publisher interface {
	Publish(ctx context.Context, filename string, document []byte) (string, error)
}

// GistPublisher publishes documents as public GitHub Gists.
type GistPublisher struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewGistPublisher creates a publisher authenticated with the given token.
func NewGistPublisher(token string) *GistPublisher {
	return &GistPublisher{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://api.github.com",
		token:   token,
	}
}

// NewGistPublisherWithBaseURL creates a publisher against a custom API
// endpoint. Intended for tests and GitHub Enterprise hosts.
func NewGistPublisherWithBaseURL(token, baseURL string) *GistPublisher {
	p := NewGistPublisher(token)
	p.baseURL = baseURL
	return p
}

type gistRequest struct {
	Description string                  `json:"description"`
	Public      bool                    `json:"public"`
	Files       map[string]gistFileBody `json:"files"`
}

type gistFileBody struct {
	Content string `json:"content"`
}

type gistResponse struct {
	HTMLURL string `json:"html_url"`
	Files   map[string]struct {
		RawURL string `json:"raw_url"`
	} `json:"files"`
}

// Publish uploads the document and returns its raw content URL.
func (p *GistPublisher) Publish(ctx context.Context, filename string, document []byte) (string, error) {
	payload, err := json.Marshal(gistRequest{
		Description: "Sideload repository manifest",
		Public:      true,
		Files: map[string]gistFileBody{
			filename: {Content: string(document)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to build gist payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/gists", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create gist request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload gist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("gist upload failed with status %s: %s", resp.Status, string(body))
	}

	var gist gistResponse
	if err := json.NewDecoder(resp.Body).Decode(&gist); err != nil {
		return "", fmt.Errorf("failed to decode gist response: %w", err)
	}

	if file, ok := gist.Files[filename]; ok && file.RawURL != "" {
		return file.RawURL, nil
	}
	if gist.HTMLURL != "" {
		return gist.HTMLURL, nil
	}

	return "", fmt.Errorf("gist response carried no URL")
}
