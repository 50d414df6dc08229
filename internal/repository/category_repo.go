package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"whiteboard-backend/internal/models"
)

type CategoryRepo struct {
	pool *pgxpool.Pool
}

func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

func (r *CategoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, icon, color, is_active, created_at
		FROM categories WHERE is_active = TRUE ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.Color, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepo) Create(ctx context.Context, c *models.Category) error {
	c.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO categories (id, name, description, icon, color, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING created_at`,
		c.ID, c.Name, c.Description, c.Icon, c.Color,
	).Scan(&c.CreatedAt)
}
