package repositories

import (
	"context"
	"time"

	"little-lemon/config"
	"little-lemon/models"

	"github.com/shopspring/decimal"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func (r *CartRepository) ListByUser(ctx context.Context, userID int) ([]models.CartItem, error) {
	query := `
		SELECT ci.id, ci.user_id, ci.menu_item_id, m.title, ci.quantity, ci.unit_price,
		       ci.created_at, ci.updated_at
		FROM cart_items ci
		JOIN menu_items m ON m.id = ci.menu_item_id
		WHERE ci.user_id = $1
		ORDER BY ci.id
	`
	rows, err := config.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var ci models.CartItem
		if err := rows.Scan(&ci.ID, &ci.UserID, &ci.MenuItemID, &ci.MenuItem,
			&ci.Quantity, &ci.UnitPrice, &ci.CreatedAt, &ci.UpdatedAt); err != nil {
			return nil, err
		}
		ci.TotalPrice = ci.LineTotal()
		items = append(items, ci)
	}
	return items, rows.Err()
}

// Upsert inserts a cart line or, when one already exists for (user, item),
// increments its quantity. The unit price is captured only on first insert.
func (r *CartRepository) Upsert(ctx context.Context, userID, menuItemID, quantity int, unitPrice decimal.Decimal) error {
	query := `
		INSERT INTO cart_items (user_id, menu_item_id, quantity, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (user_id, menu_item_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
	`
	_, err := config.DB.Exec(ctx, query, userID, menuItemID, quantity, unitPrice, time.Now())
	return err
}

func (r *CartRepository) ClearByUser(ctx context.Context, userID int) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}
