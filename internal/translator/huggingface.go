package translator

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

	"go.uber.org/zap"
)

// DefaultHuggingFaceURL is the Hugging Face inference API models endpoint
const DefaultHuggingFaceURL = "https://api-inference.huggingface.co/models"

// HuggingFace translates through the Helsinki-NLP opus-mt models
type HuggingFace struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retryDelay time.Duration
	logger     *zap.Logger
}

// NewHuggingFace creates a provider; an empty baseURL uses DefaultHuggingFaceURL
func NewHuggingFace(baseURL, token string, logger *zap.Logger) *HuggingFace {
	if baseURL == "" {
		baseURL = DefaultHuggingFaceURL
	}
	return &HuggingFace{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		retryDelay: 500 * time.Millisecond,
		logger:     logger.With(zap.String("adapter", "huggingface")),
	}
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type inferenceResult struct {
	TranslationText string `json:"translation_text"`
}

type inferenceError struct {
	Error string `json:"error"`
}

// ModelName returns the opus-mt model for a language pair
func ModelName(sourceLang, targetLang string) string {
	return fmt.Sprintf("Helsinki-NLP/opus-mt-%s-%s", sourceLang, targetLang)
}

// Translate sends the text to the model for the requested language pair.
// Text in the same source and target language is returned unchanged.
func (p *HuggingFace) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.Translation, error) {
	if !domain.IsSupportedLanguage(req.SourceLang) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, req.SourceLang)
	}
	if !domain.IsSupportedLanguage(req.TargetLang) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, req.TargetLang)
	}
	if req.SourceLang == req.TargetLang {
		return &domain.Translation{Source: req.Text, Target: req.Text}, nil
	}

	payload, err := json.Marshal(inferenceRequest{Inputs: req.Text})
	if err != nil {
		return nil, fmt.Errorf("huggingface: encode request: %w", err)
	}

	model := ModelName(req.SourceLang, req.TargetLang)
	p.logger.Debug("huggingface request", zap.String("model", model), zap.Int("text_len", len(req.Text)))

	resp, err := p.doWithRetry(ctx, p.baseURL+"/"+model, payload)
	if err != nil {
		p.logger.Error("huggingface request failed", zap.String("model", model), zap.Error(err))
		return nil, fmt.Errorf("huggingface: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("huggingface: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr inferenceError
		_ = json.Unmarshal(body, &apiErr)
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	var results []inferenceResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("huggingface: decode json: %w", err)
	}
	if len(results) == 0 || strings.TrimSpace(results[0].TranslationText) == "" {
		return nil, ErrEmptyTranslation
	}

	return &domain.Translation{
		Source: req.Text,
		Target: strings.TrimSpace(results[0].TranslationText),
	}, nil
}

// doWithRetry posts the payload with a single retry on 5xx or network errors
func (p *HuggingFace) doWithRetry(ctx context.Context, url string, payload []byte) (*http.Response, error) {
	resp, err := p.post(ctx, url, payload)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	p.logger.Warn("huggingface retry", zap.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return p.post(ctx, url, payload)
}

func (p *HuggingFace) post(ctx context.Context, url string, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
	return p.httpClient.Do(req)
}
