package repositories

import (
	"context"
	"time"

	"little-lemon/config"
	"little-lemon/models"

	"github.com/jackc/pgx/v5"
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

func (r *MenuRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, slug, title FROM categories ORDER BY title`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Slug, &cat.Title); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *MenuRepository) CreateCategory(ctx context.Context, cat *models.Category) error {
	query := `INSERT INTO categories (slug, title) VALUES ($1, $2) RETURNING id`
	return config.DB.QueryRow(ctx, query, cat.Slug, cat.Title).Scan(&cat.ID)
}

func (r *MenuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	query := `SELECT id, title, price, featured, category_id, created_at, updated_at
	          FROM menu_items ORDER BY id`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.Title, &m.Price, &m.Featured, &m.CategoryID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *MenuRepository) FindByID(ctx context.Context, id int) (*models.MenuItem, error) {
	query := `SELECT id, title, price, featured, category_id, created_at, updated_at
	          FROM menu_items WHERE id = $1`

	var m models.MenuItem
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Title, &m.Price, &m.Featured, &m.CategoryID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (title, price, featured, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		item.Title, item.Price, item.Featured, item.CategoryID, now, now,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *MenuRepository) Update(ctx context.Context, item *models.MenuItem) error {
	query := `UPDATE menu_items SET title = $1, price = $2, featured = $3, category_id = $4,
	          updated_at = $5 WHERE id = $6`
	tag, err := config.DB.Exec(ctx, query,
		item.Title, item.Price, item.Featured, item.CategoryID, time.Now(), item.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
