package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lnadoceria/doceria-api/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, f *model.Flavor) error {
	query := `
        INSERT INTO flavors (id, name, image_url, category_id, created_at, updated_at)
        VALUES (:id, :name, :image_url, :category_id, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, f)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Flavor, error) {
	var flavor model.Flavor
	query := `SELECT * FROM flavors WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &flavor, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &flavor, nil
}

func (r *PGRepository) FindAll(ctx context.Context, categoryID string) ([]model.Flavor, error) {
	flavors := []model.Flavor{}
	if categoryID != "" {
		query := `SELECT * FROM flavors WHERE category_id = $1 ORDER BY name ASC`
		if err := r.DB.SelectContext(ctx, &flavors, query, categoryID); err != nil {
			return nil, err
		}
		return flavors, nil
	}

	query := `SELECT * FROM flavors ORDER BY name ASC`
	if err := r.DB.SelectContext(ctx, &flavors, query); err != nil {
		return nil, err
	}
	return flavors, nil
}

func (r *PGRepository) Update(ctx context.Context, f *model.Flavor) error {
	query := `
        UPDATE flavors
        SET name = :name,
            image_url = :image_url,
            category_id = :category_id,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, f)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM flavors WHERE id = $1", id)
	return err
}

func (r *PGRepository) SearchByName(ctx context.Context, q string, page, pageSize int) ([]model.Flavor, int, error) {
	pattern := "%" + q + "%"

	var count int
	err := r.DB.GetContext(ctx, &count, "SELECT count(*) FROM flavors WHERE name ILIKE $1", pattern)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM flavors WHERE name ILIKE $1 ORDER BY name ASC"
	if pageSize > 0 {
		offset := (page - 1) * pageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, offset)
	}

	flavors := []model.Flavor{}
	err = r.DB.SelectContext(ctx, &flavors, query, pattern)
	if err != nil {
		return nil, 0, err
	}
	return flavors, count, nil
}
