package api

import (
	"net/http"

	"lingodeck/internal/api/response"
	"lingodeck/internal/domain"
)

func (s *Server) listDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := s.decks.ListDecks(r.Context(), nil)
	if err != nil {
		s.writeError(w, r, err, "Failed to load decks")
		return
	}
	if decks == nil {
		decks = []domain.Deck{}
	}
	response.WriteJSON(w, http.StatusOK, decks)
}

func (s *Server) createDeck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(w, r, &req); err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return
	}

	deck, err := s.decks.CreateDeck(r.Context(), domain.NewDeck{Name: req.Name})
	if err != nil {
		s.writeError(w, r, err, "Failed to create deck")
		return
	}
	response.WriteJSON(w, http.StatusCreated, deck)
}

func (s *Server) getDeck(w http.ResponseWriter, r *http.Request) {
	deck, err := s.decks.GetDeck(r.Context(), r.PathValue("deckId"))
	if err != nil {
		s.writeError(w, r, err, "Failed to load deck")
		return
	}
	response.WriteJSON(w, http.StatusOK, deck)
}

func (s *Server) deleteDeck(w http.ResponseWriter, r *http.Request) {
	if err := s.decks.DeleteDeck(r.Context(), r.PathValue("deckId")); err != nil {
		s.writeError(w, r, err, "Failed to delete deck")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
