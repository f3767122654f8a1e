package api

import (
	"net/http"

	"lingodeck/internal/api/response"
	"lingodeck/internal/domain"
)

const (
	translateFailed = "Translation failed"
	createFailed    = "Failed to create flashcard"
)

func (s *Server) languages(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, domain.Languages())
}

func (s *Server) translate(w http.ResponseWriter, r *http.Request) {
	var req domain.TranslationRequest
	if err := decode(w, r, &req); err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return
	}

	result, err := s.translations.Translate(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err, translateFailed)
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}
