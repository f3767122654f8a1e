package handler

import (
	"fmt"
	"strings"

	"lingodeck/internal/dialog"
	"lingodeck/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Callback uniques of dynamic buttons; the payload carries the value
const (
	callbackSource = "src"
	callbackTarget = "tgt"
	callbackDeck   = "deck"
)

const languagesPerRow = 3

// languageMarkup lists every language as a button, leaving out skip
func languageMarkup(unique, skip string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	var (
		rows []tele.Row
		row  tele.Row
	)
	for _, lang := range domain.Languages() {
		if lang.Code == skip {
			continue
		}
		row = append(row, markup.Data(lang.Name, unique, lang.Code))
		if len(row) == languagesPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, markup.Row(btnCancel))

	markup.Inline(rows...)
	return markup
}

// decksMarkup lists the user's decks, marking the active one
func decksMarkup(decks []domain.Deck, activeID string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(decks)+2)

	for _, d := range decks {
		rows = append(rows, markup.Row(markup.Data(deckLabel(d, activeID), callbackDeck, d.ID)))
	}
	rows = append(rows, markup.Row(btnNewDeck), markup.Row(btnMainMenu))

	markup.Inline(rows...)
	return markup
}

// decksShortcutMarkup offers the decks screen when no deck is active
func decksShortcutMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMyDecks), markup.Row(btnMainMenu))
	return markup
}

func deckLabel(d domain.Deck, activeID string) string {
	label := fmt.Sprintf("%s (%d)", d.Name, d.CardCount)
	if d.ID == activeID {
		return "✅ " + label
	}
	return label
}

// toastText renders a dialog toast as a chat message
func toastText(t dialog.Toast) string {
	icon := "✅"
	if t.Destructive {
		icon = "⚠️"
	}
	if t.Description == "" {
		return fmt.Sprintf("%s %s", icon, t.Title)
	}
	return fmt.Sprintf("%s %s: %s", icon, t.Title, t.Description)
}

// cardText renders a flashcard, hiding the back until revealed
func cardText(card *domain.Flashcard, revealed bool) string {
	var b strings.Builder
	b.WriteString("🎲 Random card:\n\n📝 ")
	b.WriteString(card.Front)
	if revealed {
		b.WriteString("\n🔄 ")
		b.WriteString(card.Back)
	}
	return b.String()
}
