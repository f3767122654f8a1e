package postgres

import (
	"context"
	"database/sql"

	"lingodeck/internal/domain"
)

// TranslationRepo implements repository.TranslationCache
type TranslationRepo struct {
	db *sql.DB
}

// NewTranslationRepo creates a new translation cache repository
func NewTranslationRepo(db *sql.DB) *TranslationRepo {
	return &TranslationRepo{db: db}
}

// GetTranslation returns a cached translation, or nil if there is none
func (r *TranslationRepo) GetTranslation(ctx context.Context, sourceLang, targetLang, text string) (*domain.CachedTranslation, error) {
	query := `
		SELECT source_lang, target_lang, source_text, target_text, created_at
		FROM translations
		WHERE source_lang = $1 AND target_lang = $2 AND source_text = $3
	`
	var t domain.CachedTranslation
	err := r.db.QueryRowContext(ctx, query, sourceLang, targetLang, text).Scan(
		&t.SourceLang, &t.TargetLang, &t.SourceText, &t.TargetText, &t.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// SaveTranslation stores a translation, refreshing an existing entry
func (r *TranslationRepo) SaveTranslation(ctx context.Context, t domain.CachedTranslation) error {
	query := `
		INSERT INTO translations (source_lang, target_lang, source_text, target_text)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (source_lang, target_lang, source_text)
		DO UPDATE SET target_text = EXCLUDED.target_text, created_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, t.SourceLang, t.TargetLang, t.SourceText, t.TargetText)
	return err
}

// CleanOldTranslations deletes cache entries older than specified days
func (r *TranslationRepo) CleanOldTranslations(days int) (int64, error) {
	query := `
		DELETE FROM translations
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	res, err := r.db.Exec(query, days)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
