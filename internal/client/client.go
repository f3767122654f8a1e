// Package client talks to the lingodeck HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lingodeck/internal/domain"
)

// Fallback messages used when the server does not explain a failure
const (
	TranslationFailed = "Translation failed"
	CreateCardFailed  = "Failed to create flashcard"
)

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client calls the translation and flashcard endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL. A nil httpClient gets a default one.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Translate calls POST /api/translate
func (c *Client) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.Translation, error) {
	var out domain.Translation
	if err := c.do(ctx, http.MethodPost, "/api/translate", req, &out, TranslationFailed); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFlashcard calls POST /api/flashcards
func (c *Client) CreateFlashcard(ctx context.Context, card domain.NewFlashcard) (*domain.Flashcard, error) {
	var out domain.Flashcard
	if err := c.do(ctx, http.MethodPost, "/api/flashcards", card, &out, CreateCardFailed); err != nil {
		return nil, err
	}
	return &out, nil
}

// Languages calls GET /api/languages
func (c *Client) Languages(ctx context.Context) ([]domain.Language, error) {
	var out []domain.Language
	if err := c.do(ctx, http.MethodGet, "/api/languages", nil, &out, "Failed to load languages"); err != nil {
		return nil, err
	}
	return out, nil
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorBody
		_ = json.Unmarshal(raw, &e)
		msg := strings.TrimSpace(e.Error)
		if msg == "" {
			msg = fallback
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
