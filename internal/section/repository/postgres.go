package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/lnadoceria/doceria-api/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const insertQuery = `
    INSERT INTO display_sections (
        id, title, type, active, category_id, product_ids,
        sort_order, start_date, end_date, tags, created_at, updated_at
    )
    VALUES (
        :id, :title, :type, :active, :category_id, :product_ids,
        :sort_order, :start_date, :end_date, :tags, :created_at, :updated_at
    )
`

func (r *PGRepository) Create(ctx context.Context, s *model.DisplaySection) error {
	_, err := r.DB.NamedExecContext(ctx, insertQuery, s)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.DisplaySection, error) {
	var section model.DisplaySection
	query := `SELECT * FROM display_sections WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &section, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &section, nil
}

func (r *PGRepository) FindAllOrdered(ctx context.Context) ([]model.DisplaySection, error) {
	sections := []model.DisplaySection{}
	query := `SELECT * FROM display_sections ORDER BY sort_order ASC, created_at ASC`
	if err := r.DB.SelectContext(ctx, &sections, query); err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.DisplaySection) error {
	query := `
        UPDATE display_sections
        SET title = :title,
            type = :type,
            active = :active,
            category_id = :category_id,
            product_ids = :product_ids,
            sort_order = :sort_order,
            start_date = :start_date,
            end_date = :end_date,
            tags = :tags,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM display_sections WHERE id = $1", id)
	return err
}

func (r *PGRepository) NextSortOrder(ctx context.Context) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(sort_order) + 1, 0) FROM display_sections`
	if err := r.DB.GetContext(ctx, &next, query); err != nil {
		return 0, err
	}
	return next, nil
}

func (r *PGRepository) ReplaceAll(ctx context.Context, sections []model.DisplaySection) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM display_sections"); err != nil {
		return err
	}

	for i := range sections {
		if _, err := tx.NamedExecContext(ctx, insertQuery, &sections[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
