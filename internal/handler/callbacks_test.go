package handler

import (
	"testing"

	"lingodeck/internal/domain"
	"lingodeck/internal/testutil"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "test_data",
			expected: "test_data",
		},
		{
			name:     "string with whitespace",
			input:    "  test_data  ",
			expected: "test_data",
		},
		{
			name:     "string with newline",
			input:    "test\ndata",
			expected: "testdata",
		},
		{
			name:     "string with tab",
			input:    "test\tdata",
			expected: "testdata",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "test\x00data\x01",
			expected: "testdata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseCallback(t *testing.T) {
	tests := []struct {
		name        string
		callback    *tele.Callback
		wantUnique  string
		wantPayload string
	}{
		{
			name:        "unique set by telebot",
			callback:    &tele.Callback{Unique: "src", Data: "de"},
			wantUnique:  "src",
			wantPayload: "de",
		},
		{
			name:       "static button",
			callback:   &tele.Callback{Unique: "my_decks"},
			wantUnique: "my_decks",
		},
		{
			name:        "raw data with separator",
			callback:    &tele.Callback{Data: "\fdeck|V1StGXR8_Z5jdHi6B-myT"},
			wantUnique:  "deck",
			wantPayload: "V1StGXR8_Z5jdHi6B-myT",
		},
		{
			name:       "raw data without payload",
			callback:   &tele.Callback{Data: "cancel\n"},
			wantUnique: "cancel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unique, payload := parseCallback(tt.callback)
			assert.Equal(t, tt.wantUnique, unique)
			assert.Equal(t, tt.wantPayload, payload)
		})
	}
}

func TestHandlerState(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil, testutil.NewTestLogger())

	assert.Equal(t, domain.StateIdle, h.GetState(1).State)

	h.SetState(1, &domain.StateData{State: domain.StateChoosingSource, Text: "hello"})
	assert.Equal(t, "hello", h.GetState(1).Text)
	assert.Equal(t, domain.StateIdle, h.GetState(2).State)

	h.ResetState(1)
	assert.Equal(t, domain.StateIdle, h.GetState(1).State)
	assert.Empty(t, h.GetState(1).Text)
}

func TestDialogFor(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil, testutil.NewTestLogger())

	first := h.dialogFor(1, "deck1")
	assert.Same(t, first, h.dialogFor(1, "deck1"))

	other := h.dialogFor(1, "deck2")
	assert.NotSame(t, first, other)
	assert.Equal(t, "deck2", other.DeckID())

	assert.NotSame(t, other, h.dialogFor(2, "deck2"))
}
