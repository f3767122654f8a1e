package handler

import (
	"strings"
	"testing"

	"lingodeck/internal/dialog"
	"lingodeck/internal/domain"
	"lingodeck/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageMarkup(t *testing.T) {
	markup := languageMarkup(callbackTarget, "en")

	var (
		codes  []string
		cancel bool
	)
	for _, row := range markup.InlineKeyboard {
		assert.LessOrEqual(t, len(row), languagesPerRow)
		for _, btn := range row {
			if btn.Unique == btnCancel.Unique {
				cancel = true
				continue
			}
			assert.Equal(t, callbackTarget, btn.Unique)
			codes = append(codes, btn.Data)
		}
	}

	assert.True(t, cancel)
	assert.NotContains(t, codes, "en")
	assert.Contains(t, codes, "de")
	assert.Len(t, codes, len(domain.Languages())-1)
}

func TestDecksMarkup(t *testing.T) {
	decks := []domain.Deck{
		*testutil.NewTestDeck("d1", "Travel", 3),
		*testutil.NewTestDeck("d2", "Food", 0),
	}

	markup := decksMarkup(decks, "d2")

	require.Len(t, markup.InlineKeyboard, 4)
	assert.Equal(t, "Travel (3)", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "✅ Food (0)", markup.InlineKeyboard[1][0].Text)
	assert.Equal(t, "d2", markup.InlineKeyboard[1][0].Data)
	assert.Equal(t, btnNewDeck.Unique, markup.InlineKeyboard[2][0].Unique)
	assert.Equal(t, btnMainMenu.Unique, markup.InlineKeyboard[3][0].Unique)
}

func TestToastText(t *testing.T) {
	assert.Equal(t,
		"✅ Success: Translation flashcard created successfully",
		toastText(dialog.Toast{Title: "Success", Description: "Translation flashcard created successfully"}),
	)
	assert.Equal(t,
		"⚠️ Error: Translation failed",
		toastText(dialog.Toast{Title: "Error", Description: "Translation failed", Destructive: true}),
	)
	assert.Equal(t, "✅ Done", toastText(dialog.Toast{Title: "Done"}))
}

func TestCardText(t *testing.T) {
	card := testutil.NewTestFlashcard("c1", "d1", "hello", "hallo")

	hidden := cardText(card, false)
	assert.Contains(t, hidden, "hello")
	assert.NotContains(t, hidden, "hallo")

	assert.Contains(t, cardText(card, true), "hallo")
}

func TestCheckText(t *testing.T) {
	assert.NotEmpty(t, checkText(""))
	assert.Empty(t, checkText("hello"))
	assert.Empty(t, checkText(strings.Repeat("ü", domain.MaxTextLength)))
	assert.NotEmpty(t, checkText(strings.Repeat("ü", domain.MaxTextLength+1)))
}
