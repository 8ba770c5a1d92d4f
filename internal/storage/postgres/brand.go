package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"content_orchestrator/internal/domain"
)

const brandColumns = `
	id, name, industry, description, target_audience, keywords, posting_times,
	posting_frequency, auto_generate, default_platform, created_at, updated_at`

type BrandStore struct {
	db *sqlx.DB
}

func NewBrandStore(db *sqlx.DB) *BrandStore {
	return &BrandStore{db: db}
}

func (s *BrandStore) GetByID(ctx context.Context, id int64) (*domain.Brand, error) {
	var brand domain.Brand
	query := `
		SELECT` + brandColumns + `
		FROM brands
		WHERE id = $1`

	err := s.db.GetContext(ctx, &brand, query, id)
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// ListAutoGenerate returns brands opted in to automatic drafting.
func (s *BrandStore) ListAutoGenerate(ctx context.Context) ([]domain.Brand, error) {
	query := `
		SELECT` + brandColumns + `
		FROM brands
		WHERE auto_generate
		ORDER BY id`

	var brands []domain.Brand
	err := s.db.SelectContext(ctx, &brands, query)
	return brands, err
}
