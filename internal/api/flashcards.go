package api

import (
	"net/http"
	"strconv"

	"lingodeck/internal/api/response"
	"lingodeck/internal/domain"
)

// flashcardPage is one page of a deck listing
type flashcardPage struct {
	Flashcards []domain.Flashcard `json:"flashcards"`
	Page       int                `json:"page"`
	TotalPages int                `json:"totalPages"`
}

func (s *Server) createFlashcard(w http.ResponseWriter, r *http.Request) {
	var card domain.NewFlashcard
	if err := decode(w, r, &card); err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return
	}

	created, err := s.flashcards.CreateFlashcard(r.Context(), card)
	if err != nil {
		s.writeError(w, r, err, createFailed)
		return
	}

	response.WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) listFlashcards(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckId")

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.WriteJSON(w, http.StatusBadRequest, response.Error("page must be a positive integer"))
			return
		}
		page = n
	}

	// Resolve the deck first so an unknown id is a 404 rather than an empty page
	if _, err := s.decks.GetDeck(r.Context(), deckID); err != nil {
		s.writeError(w, r, err, "Failed to load flashcards")
		return
	}

	cards, totalPages, err := s.flashcards.ListFlashcards(r.Context(), deckID, page)
	if err != nil {
		s.writeError(w, r, err, "Failed to load flashcards")
		return
	}
	if cards == nil {
		cards = []domain.Flashcard{}
	}

	response.WriteJSON(w, http.StatusOK, flashcardPage{
		Flashcards: cards,
		Page:       page,
		TotalPages: totalPages,
	})
}

func (s *Server) deleteFlashcard(w http.ResponseWriter, r *http.Request) {
	if err := s.flashcards.DeleteFlashcard(r.Context(), r.PathValue("flashcardId")); err != nil {
		s.writeError(w, r, err, "Failed to delete flashcard")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
