package repository

import (
	"context"
	"database/sql"
	"fmt"

	"inkpress/internal/common"
	"inkpress/internal/domain/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	List(ctx context.Context) ([]model.Category, error)
	DeleteByID(ctx context.Context, id string) error
}

type pgCategoryRepository struct {
	db *sql.DB
}

func NewPgCategoryRepository(db *sql.DB) CategoryRepository {
	return &pgCategoryRepository{db: db}
}

func (r *pgCategoryRepository) Create(ctx context.Context, c *model.Category) error {
	query := `INSERT INTO categories (id, name) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Name); err != nil {
		return fmt.Errorf("pgCategoryRepository.Create: %w: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *pgCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT id, name, created_at FROM categories`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgCategoryRepository.List: %w: %v", common.ErrPersistence, err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgCategoryRepository.List: %w: %v", common.ErrPersistence, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCategoryRepository.List: %w: %v", common.ErrPersistence, err)
	}
	return categories, nil
}

// DeleteByID removes only the category row; posts referencing it are
// detached by the schema, never deleted. Unknown ids are a no-op.
func (r *pgCategoryRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM categories WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("pgCategoryRepository.DeleteByID: %w: %v", common.ErrPersistence, err)
	}
	return nil
}
