package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"lingodeck/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationRepo_GetTranslation(t *testing.T) {
	now := time.Now()
	columns := []string{"source_lang", "target_lang", "source_text", "target_text", "created_at"}

	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedText  string
		expectedError bool
	}{
		{
			name:         "cache hit",
			mockRows:     sqlmock.NewRows(columns).AddRow("en", "de", "house", "Haus", now),
			expectedText: "Haus",
		},
		{
			name:      "cache miss",
			mockError: sql.ErrNoRows,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewTranslationRepo(db)
			exp := mock.ExpectQuery("SELECT source_lang, target_lang").WithArgs("en", "de", "house")
			if tt.mockError != nil {
				exp.WillReturnError(tt.mockError)
			} else {
				exp.WillReturnRows(tt.mockRows)
			}

			cached, err := repo.GetTranslation(context.Background(), "en", "de", "house")

			switch {
			case tt.expectedError:
				assert.Error(t, err)
			case tt.expectedText == "":
				assert.NoError(t, err)
				assert.Nil(t, cached)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedText, cached.TargetText)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTranslationRepo_SaveTranslation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTranslationRepo(db)
	mock.ExpectExec("INSERT INTO translations").
		WithArgs("en", "de", "house", "Haus").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveTranslation(context.Background(), domain.CachedTranslation{
		SourceLang: "en",
		TargetLang: "de",
		SourceText: "house",
		TargetText: "Haus",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationRepo_CleanOldTranslations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTranslationRepo(db)
	mock.ExpectExec("DELETE FROM translations").
		WithArgs(30).
		WillReturnResult(sqlmock.NewResult(0, 4))

	removed, err := repo.CleanOldTranslations(30)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
