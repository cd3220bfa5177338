package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"little-lemon/config"
	"little-lemon/models"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// PlaceFromCart converts the user's cart into an order inside a single
// transaction: the cart rows are locked, one order row plus one order item per
// cart line are written, and the cart is emptied. Either everything commits or
// nothing does.
func (r *OrderRepository) PlaceFromCart(ctx context.Context, userID int) (*models.Order, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx,
		`SELECT ci.menu_item_id, m.title, ci.quantity, ci.unit_price
		 FROM cart_items ci
		 JOIN menu_items m ON m.id = ci.menu_item_id
		 WHERE ci.user_id = $1
		 ORDER BY ci.id
		 FOR UPDATE OF ci`,
		userID)
	if err != nil {
		return nil, err
	}

	cart := []models.CartItem{}
	for rows.Next() {
		var ci models.CartItem
		if err := rows.Scan(&ci.MenuItemID, &ci.MenuItem, &ci.Quantity, &ci.UnitPrice); err != nil {
			rows.Close()
			return nil, err
		}
		cart = append(cart, ci)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(cart) == 0 {
		return nil, models.ErrCartEmpty
	}

	items, total := models.BuildOrderLines(cart)

	order := &models.Order{
		UserID: userID,
		Status: models.StatusPending,
		Total:  total,
		Date:   time.Now(),
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, status, total, date, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		order.UserID, order.Status, order.Total, order.Date, time.Now(),
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, menu_item_id, title, quantity, unit_price, price)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			items[i].OrderID, items[i].MenuItemID, items[i].MenuItem,
			items[i].Quantity, items[i].UnitPrice, items[i].Price,
		).Scan(&items[i].ID)
		if err != nil {
			return nil, err
		}
	}

	if _, err = tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	order.Items = items
	return order, nil
}

const orderSelect = `
	SELECT o.id, o.user_id, u.username, o.delivery_crew_id, d.username,
	       o.status, o.total, o.date, o.created_at
	FROM orders o
	JOIN users u ON u.id = o.user_id
	LEFT JOIN users d ON d.id = o.delivery_crew_id
`

func (r *OrderRepository) scanOrders(ctx context.Context, rows pgx.Rows) ([]models.Order, error) {
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Username, &o.DeliveryCrewID, &o.DeliveryCrew,
			&o.Status, &o.Total, &o.Date, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *OrderRepository) listItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, order_id, menu_item_id, title, quantity, unit_price, price
		 FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.MenuItem,
			&it.Quantity, &it.UnitPrice, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	rows, err := config.DB.Query(ctx, orderSelect+` WHERE o.user_id = $1 ORDER BY o.id`, userID)
	if err != nil {
		return nil, err
	}
	return r.scanOrders(ctx, rows)
}

func (r *OrderRepository) ListByCrew(ctx context.Context, crewID int) ([]models.Order, error) {
	rows, err := config.DB.Query(ctx, orderSelect+` WHERE o.delivery_crew_id = $1 ORDER BY o.id`, crewID)
	if err != nil {
		return nil, err
	}
	return r.scanOrders(ctx, rows)
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	rows, err := config.DB.Query(ctx, orderSelect+` ORDER BY o.id`)
	if err != nil {
		return nil, err
	}
	return r.scanOrders(ctx, rows)
}

func (r *OrderRepository) FindByID(ctx context.Context, orderID int) (*models.Order, error) {
	var o models.Order
	err := config.DB.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, orderID).Scan(
		&o.ID, &o.UserID, &o.Username, &o.DeliveryCrewID, &o.DeliveryCrew,
		&o.Status, &o.Total, &o.Date, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// Update reassigns the delivery crew and/or sets the status. Nil fields are
// left unchanged.
func (r *OrderRepository) Update(ctx context.Context, orderID int, crewID *int, status *models.OrderStatus) error {
	sets := []string{}
	args := []interface{}{}
	argIndex := 1

	if crewID != nil {
		sets = append(sets, fmt.Sprintf("delivery_crew_id = $%d", argIndex))
		args = append(args, *crewID)
		argIndex++
	}
	if status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *status)
		argIndex++
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, orderID)
	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d", strings.Join(sets, ", "), argIndex)

	tag, err := config.DB.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *OrderRepository) SetStatus(ctx context.Context, orderID int, status models.OrderStatus) error {
	tag, err := config.DB.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, orderID int) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}
