package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lingodeck/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteJSON(rec, http.StatusCreated, map[string]string{"id": "abc"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"abc"}`, rec.Body.String())
}

func TestErrorEnvelopes(t *testing.T) {
	assert.Equal(t, Response{Status: "error", Error: "boom"}, GeneralError(errors.New("boom")))

	vErr := &validation.Error{Messages: []string{"field text is required", "field sourceLang is required"}}
	assert.Equal(t,
		Response{Status: "error", Error: "field text is required, field sourceLang is required"},
		ValidationError(vErr),
	)
}
