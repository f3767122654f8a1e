package validation

import (
	"strings"
	"testing"

	"lingodeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_TranslationRequest(t *testing.T) {
	tests := []struct {
		name             string
		req              domain.TranslationRequest
		expectedError    bool
		expectedMessages []string
	}{
		{
			name: "valid request",
			req:  domain.TranslationRequest{Text: "hello", SourceLang: "en", TargetLang: "de"},
		},
		{
			name:          "empty text",
			req:           domain.TranslationRequest{Text: "", SourceLang: "en", TargetLang: "de"},
			expectedError: true,
			expectedMessages: []string{
				"field text is required",
			},
		},
		{
			name: "text at limit",
			req:  domain.TranslationRequest{Text: strings.Repeat("a", 500), SourceLang: "en", TargetLang: "de"},
		},
		{
			name: "multibyte text at limit",
			req:  domain.TranslationRequest{Text: strings.Repeat("ü", 500), SourceLang: "en", TargetLang: "de"},
		},
		{
			name:          "text too long",
			req:           domain.TranslationRequest{Text: strings.Repeat("a", 501), SourceLang: "en", TargetLang: "de"},
			expectedError: true,
			expectedMessages: []string{
				"field text must be at most 500 characters",
			},
		},
		{
			name:          "missing languages",
			req:           domain.TranslationRequest{Text: "hello"},
			expectedError: true,
			expectedMessages: []string{
				"field sourceLang is required",
				"field targetLang is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.req)

			if !tt.expectedError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, IsValidationError(err))

			var vErr *Error
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.expectedMessages, vErr.Messages)
		})
	}
}

func TestStruct_NewFlashcard(t *testing.T) {
	err := Struct(domain.NewFlashcard{DeckID: "", Front: "hello", Back: "hallo"})
	require.Error(t, err)
	assert.Equal(t, "field deckId is required", err.Error())

	err = Struct(domain.NewFlashcard{DeckID: "abc", Front: "hello", Back: "hallo"})
	assert.NoError(t, err)
}
