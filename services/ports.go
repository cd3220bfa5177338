package services

import (
	"context"
	"errors"

	"little-lemon/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type MenuRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, cat *models.Category) error
	List(ctx context.Context) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id int) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id int) error
}

type CartRepository interface {
	ListByUser(ctx context.Context, userID int) ([]models.CartItem, error)
	Upsert(ctx context.Context, userID, menuItemID, quantity int, unitPrice decimal.Decimal) error
	ClearByUser(ctx context.Context, userID int) error
}

type OrderRepository interface {
	PlaceFromCart(ctx context.Context, userID int) (*models.Order, error)
	ListByUser(ctx context.Context, userID int) ([]models.Order, error)
	ListByCrew(ctx context.Context, crewID int) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, orderID int) (*models.Order, error)
	Update(ctx context.Context, orderID int, crewID *int, status *models.OrderStatus) error
	SetStatus(ctx context.Context, orderID int, status models.OrderStatus) error
	Delete(ctx context.Context, orderID int) error
}

// GroupDirectory answers role-membership questions; backed by the user store
// in production and by fakes in tests.
type GroupDirectory interface {
	IsMember(ctx context.Context, userID int, group string) (bool, error)
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, models.ErrNotFound)
}
