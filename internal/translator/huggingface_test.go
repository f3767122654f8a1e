package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"lingodeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestProvider(url string) *HuggingFace {
	p := NewHuggingFace(url, "hf_test", zap.NewNop())
	p.retryDelay = time.Millisecond
	return p
}

func TestHuggingFace_Translate(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody inferenceRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"translation_text":" Guten Morgen "}]`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	result, err := p.Translate(context.Background(), domain.TranslationRequest{
		Text:       "Good morning",
		SourceLang: "en",
		TargetLang: "de",
	})

	require.NoError(t, err)
	assert.Equal(t, "Good morning", result.Source)
	assert.Equal(t, "Guten Morgen", result.Target)
	assert.Equal(t, "/Helsinki-NLP/opus-mt-en-de", gotPath)
	assert.Equal(t, "Bearer hf_test", gotAuth)
	assert.Equal(t, "Good morning", gotBody.Inputs)
}

func TestHuggingFace_Translate_SameLanguage(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	result, err := p.Translate(context.Background(), domain.TranslationRequest{
		Text:       "Haus",
		SourceLang: "de",
		TargetLang: "de",
	})

	require.NoError(t, err)
	assert.Equal(t, "Haus", result.Target)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestHuggingFace_Translate_UnsupportedLanguage(t *testing.T) {
	p := newTestProvider("http://127.0.0.1:0")

	_, err := p.Translate(context.Background(), domain.TranslationRequest{
		Text:       "hello",
		SourceLang: "en",
		TargetLang: "xx",
	})

	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestHuggingFace_Translate_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Model is currently loading"}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	_, err := p.Translate(context.Background(), domain.TranslationRequest{
		Text:       "hello",
		SourceLang: "en",
		TargetLang: "fr",
	})

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusBadRequest, provErr.StatusCode)
	assert.Equal(t, "Model is currently loading", provErr.Error())
}

func TestHuggingFace_Translate_RetriesServerError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[{"translation_text":"bonjour"}]`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	result, err := p.Translate(context.Background(), domain.TranslationRequest{
		Text:       "hello",
		SourceLang: "en",
		TargetLang: "fr",
	})

	require.NoError(t, err)
	assert.Equal(t, "bonjour", result.Target)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestHuggingFace_Translate_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	_, err := p.Translate(context.Background(), domain.TranslationRequest{
		Text:       "hello",
		SourceLang: "en",
		TargetLang: "fr",
	})

	assert.ErrorIs(t, err, ErrEmptyTranslation)
}
