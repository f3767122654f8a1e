package handler

import (
	"errors"

	"lingodeck/internal/dialog"
	"lingodeck/internal/service"
	"lingodeck/internal/translator"
	"lingodeck/internal/validation"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// dialogFor returns the user's dialog bound to deckID, replacing one bound
// to another deck unless it is still submitting
func (h *Handler) dialogFor(userID int64, deckID string) *dialog.Dialog {
	h.dialogMux.Lock()
	defer h.dialogMux.Unlock()

	if d, ok := h.dialogs[userID]; ok && (d.DeckID() == deckID || d.Busy()) {
		return d
	}

	d := dialog.New(dialog.Options{
		DeckID:       deckID,
		Translator:   h.translations,
		Creator:      h.flashcards,
		Notifier:     h.chatNotifier(userID),
		ErrorMessage: userMessage,
		Logger:       h.logger.With(zap.Int64("user_id", userID)),
	})
	h.dialogs[userID] = d
	return d
}

// chatNotifier delivers toasts as chat messages
func (h *Handler) chatNotifier(userID int64) dialog.Notifier {
	return dialog.NotifierFunc(func(t dialog.Toast) {
		if _, err := h.bot.Send(&tele.User{ID: userID}, toastText(t)); err != nil {
			h.logger.Warn("Failed to send toast", zap.Error(err), zap.Int64("user_id", userID))
		}
	})
}

// userMessage returns the text of errors meant for the learner and "" for
// everything else, so the dialog falls back to its generic step message
func userMessage(err error) string {
	var (
		vErr     *validation.Error
		provider *translator.ProviderError
	)

	switch {
	case errors.As(err, &vErr):
		return vErr.Error()
	case errors.Is(err, translator.ErrUnsupportedLanguage):
		return translator.ErrUnsupportedLanguage.Error()
	case errors.Is(err, translator.ErrEmptyTranslation):
		return translator.ErrEmptyTranslation.Error()
	case errors.Is(err, service.ErrDeckNotFound):
		return service.ErrDeckNotFound.Error()
	case errors.As(err, &provider):
		return provider.Error()
	}
	return ""
}
