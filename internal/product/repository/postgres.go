package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lnadoceria/doceria-api/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product, categoryIDs []string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO products (id, name, description, price, discount, image_url, active, created_at, updated_at)
        VALUES (:id, :name, :description, :price, :discount, :image_url, :active, :created_at, :updated_at)
    `
	if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
		return err
	}

	if err := insertCategoryLinks(ctx, tx, p.ID, categoryIDs); err != nil {
		return err
	}

	return tx.Commit()
}

func insertCategoryLinks(ctx context.Context, tx *sqlx.Tx, productID string, categoryIDs []string) error {
	for _, categoryID := range categoryIDs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2)",
			productID, categoryID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	query := `SELECT * FROM products ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &products, query); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product, categoryIDs []string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        UPDATE products
        SET name = :name,
            description = :description,
            price = :price,
            discount = :discount,
            image_url = :image_url,
            active = :active,
            updated_at = :updated_at
        WHERE id = :id
    `
	if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
		return err
	}

	// nil means "leave memberships alone"; an empty slice clears them.
	if categoryIDs != nil {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM product_categories WHERE product_id = $1", p.ID); err != nil {
			return err
		}
		if err := insertCategoryLinks(ctx, tx, p.ID, categoryIDs); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	return err
}

func (r *PGRepository) CountByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In("SELECT count(*) FROM products WHERE id IN (?)", ids)
	if err != nil {
		return 0, err
	}
	query = r.DB.Rebind(query)

	var count int
	if err := r.DB.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PGRepository) CountCategoriesByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In("SELECT count(*) FROM categories WHERE id IN (?)", ids)
	if err != nil {
		return 0, err
	}
	query = r.DB.Rebind(query)

	var count int
	if err := r.DB.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PGRepository) FindCategories(ctx context.Context, productID string) ([]model.Category, error) {
	categories := []model.Category{}
	query := `
        SELECT c.* FROM categories c
        JOIN product_categories pc ON pc.category_id = c.id
        WHERE pc.product_id = $1
        ORDER BY c.name ASC
    `
	if err := r.DB.SelectContext(ctx, &categories, query, productID); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PGRepository) FindActiveByCategory(ctx context.Context, categoryID string, limit int) ([]model.Product, error) {
	products := []model.Product{}
	query := `
        SELECT p.* FROM products p
        JOIN product_categories pc ON pc.product_id = p.id
        WHERE pc.category_id = $1 AND p.active = true
        ORDER BY p.created_at DESC
        LIMIT $2
    `
	if err := r.DB.SelectContext(ctx, &products, query, categoryID, limit); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) FindActiveByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	query, args, err := sqlx.In("SELECT * FROM products WHERE id IN (?) AND active = true", ids)
	if err != nil {
		return nil, err
	}
	query = r.DB.Rebind(query)

	products := []model.Product{}
	if err := r.DB.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) FindDiscounted(ctx context.Context, limit int) ([]model.Product, error) {
	products := []model.Product{}
	query := `
        SELECT * FROM products
        WHERE active = true AND discount > 0
        ORDER BY discount DESC
        LIMIT $1
    `
	if err := r.DB.SelectContext(ctx, &products, query, limit); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) FindCreatedSince(ctx context.Context, since time.Time, limit int) ([]model.Product, error) {
	products := []model.Product{}
	query := `
        SELECT * FROM products
        WHERE active = true AND created_at >= $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	if err := r.DB.SelectContext(ctx, &products, query, since, limit); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) SearchActive(ctx context.Context, q string) ([]model.Product, []model.Product, error) {
	pattern := "%" + q + "%"

	nameMatches := []model.Product{}
	nameQuery := `
        SELECT * FROM products
        WHERE active = true AND name ILIKE $1
        ORDER BY name ASC
    `
	if err := r.DB.SelectContext(ctx, &nameMatches, nameQuery, pattern); err != nil {
		return nil, nil, err
	}

	excluded := make([]string, 0, len(nameMatches))
	for _, p := range nameMatches {
		excluded = append(excluded, p.ID)
	}

	otherQuery := `
        SELECT DISTINCT p.* FROM products p
        LEFT JOIN product_categories pc ON pc.product_id = p.id
        LEFT JOIN categories c ON c.id = pc.category_id
        LEFT JOIN flavors f ON f.category_id = c.id
        WHERE p.active = true
          AND (p.description ILIKE ? OR c.name ILIKE ? OR f.name ILIKE ?)
    `
	args := []interface{}{pattern, pattern, pattern}
	if len(excluded) > 0 {
		otherQuery += " AND p.id NOT IN (?)"
		var err error
		otherQuery, args, err = sqlx.In(otherQuery, pattern, pattern, pattern, excluded)
		if err != nil {
			return nil, nil, err
		}
	}
	otherQuery += " ORDER BY p.name ASC"
	otherQuery = r.DB.Rebind(otherQuery)

	otherMatches := []model.Product{}
	if err := r.DB.SelectContext(ctx, &otherMatches, otherQuery, args...); err != nil {
		return nil, nil, err
	}

	return nameMatches, otherMatches, nil
}
