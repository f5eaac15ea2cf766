package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"inkpress/internal/common"
	"inkpress/internal/domain/model"
)

// PostFilter narrows List results. Zero value means no filtering.
type PostFilter struct {
	PublishedOnly bool
	CategoryID    string
	MinDate       *time.Time // inclusive lower bound on post_date
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	List(ctx context.Context, filter PostFilter) ([]model.Post, error)
	FindByID(ctx context.Context, id string) (*model.Post, error)
	DeleteByID(ctx context.Context, id string) error
}

type pgPostRepository struct {
	db *sql.DB
}

func NewPgPostRepository(db *sql.DB) PostRepository {
	return &pgPostRepository{db: db}
}

func (r *pgPostRepository) Create(ctx context.Context, p *model.Post) error {
	query := `INSERT INTO posts (id, title, slug, body, post_date, feature_image, published, category_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Title, p.Slug, p.Body, p.PostDate, p.FeatureImage, p.Published, p.CategoryID)
	if err != nil {
		return fmt.Errorf("pgPostRepository.Create: %w: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *pgPostRepository) List(ctx context.Context, filter PostFilter) ([]model.Post, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT p.id, p.title, p.slug, p.body, p.post_date, p.feature_image, p.published,
               p.category_id, c.name AS category_name, p.created_at
        FROM posts p
        LEFT JOIN categories c ON p.category_id = c.id`)

	var conditions []string
	var args []interface{}
	argID := 1

	if filter.PublishedOnly {
		conditions = append(conditions, "p.published = TRUE")
	}
	if filter.CategoryID != "" {
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", argID))
		args = append(args, filter.CategoryID)
		argID++
	}
	if filter.MinDate != nil {
		conditions = append(conditions, fmt.Sprintf("p.post_date >= $%d", argID))
		args = append(args, *filter.MinDate)
		argID++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("pgPostRepository.List: %w: %v", common.ErrPersistence, err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Body, &p.PostDate, &p.FeatureImage, &p.Published,
			&p.CategoryID, &p.CategoryName, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgPostRepository.List: %w: %v", common.ErrPersistence, err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgPostRepository.List: %w: %v", common.ErrPersistence, err)
	}
	return posts, nil
}

func (r *pgPostRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	query := `
        SELECT p.id, p.title, p.slug, p.body, p.post_date, p.feature_image, p.published,
               p.category_id, c.name AS category_name, p.created_at
        FROM posts p
        LEFT JOIN categories c ON p.category_id = c.id
        WHERE p.id = $1`

	p := &model.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Body, &p.PostDate, &p.FeatureImage, &p.Published,
		&p.CategoryID, &p.CategoryName, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %q: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("pgPostRepository.FindByID: %w: %v", common.ErrPersistence, err)
	}
	return p, nil
}

// DeleteByID is idempotent: deleting an id that does not exist is a no-op,
// not an error.
func (r *pgPostRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM posts WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("pgPostRepository.DeleteByID: %w: %v", common.ErrPersistence, err)
	}
	return nil
}
