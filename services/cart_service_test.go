package services

import (
	"context"
	"testing"
	"time"

	"little-lemon/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type fakeMenuRepo struct {
	categories []models.Category
	items      map[int]models.MenuItem
	nextID     int
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: map[int]models.MenuItem{}, nextID: 1}
}

func (r *fakeMenuRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	return r.categories, nil
}

func (r *fakeMenuRepo) CreateCategory(ctx context.Context, cat *models.Category) error {
	cat.ID = len(r.categories) + 1
	r.categories = append(r.categories, *cat)
	return nil
}

func (r *fakeMenuRepo) List(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	for _, m := range r.items {
		items = append(items, m)
	}
	return items, nil
}

func (r *fakeMenuRepo) FindByID(ctx context.Context, id int) (*models.MenuItem, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &m, nil
}

func (r *fakeMenuRepo) Create(ctx context.Context, item *models.MenuItem) error {
	item.ID = r.nextID
	r.nextID++
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	r.items[item.ID] = *item
	return nil
}

func (r *fakeMenuRepo) Update(ctx context.Context, item *models.MenuItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.items[item.ID] = *item
	return nil
}

func (r *fakeMenuRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeMenuRepo) add(id int, title, price string) {
	r.items[id] = models.MenuItem{ID: id, Title: title, Price: decimal.RequireFromString(price)}
}

// fakeCartRepo mirrors the upsert contract of the Postgres cart repository:
// first insert captures the unit price, repeat inserts only add quantity.
type fakeCartRepo struct {
	lines map[int][]models.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{lines: map[int][]models.CartItem{}}
}

func (r *fakeCartRepo) ListByUser(ctx context.Context, userID int) ([]models.CartItem, error) {
	items := []models.CartItem{}
	for _, ci := range r.lines[userID] {
		ci.TotalPrice = ci.LineTotal()
		items = append(items, ci)
	}
	return items, nil
}

func (r *fakeCartRepo) Upsert(ctx context.Context, userID, menuItemID, quantity int, unitPrice decimal.Decimal) error {
	for i, ci := range r.lines[userID] {
		if ci.MenuItemID == menuItemID {
			r.lines[userID][i].Quantity += quantity
			return nil
		}
	}
	r.lines[userID] = append(r.lines[userID], models.CartItem{
		UserID:     userID,
		MenuItemID: menuItemID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
	})
	return nil
}

func (r *fakeCartRepo) ClearByUser(ctx context.Context, userID int) error {
	delete(r.lines, userID)
	return nil
}

func TestCartAddUnknownMenuItem(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), newFakeMenuRepo())

	err := svc.Add(context.Background(), 1, 99, 1)
	if err != models.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCartAddAccumulatesQuantity(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	menuRepo.add(1, "Greek Salad", "5.00")
	cartRepo := newFakeCartRepo()
	svc := NewCartService(cartRepo, menuRepo)
	ctx := context.Background()

	if err := svc.Add(ctx, 1, 1, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}

	// a price change between adds must not be re-captured on the existing line
	menuRepo.add(1, "Greek Salad", "7.50")

	if err := svc.Add(ctx, 1, 1, 3); err != nil {
		t.Fatalf("second add: %v", err)
	}

	items, _ := svc.List(ctx, 1)
	if len(items) != 1 {
		t.Fatalf("expected a single cart line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", items[0].Quantity)
	}
	if want := decimal.RequireFromString("5.00"); !items[0].UnitPrice.Equal(want) {
		t.Errorf("unit price = %s, want the originally captured %s", items[0].UnitPrice, want)
	}
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	menuRepo.add(1, "Bruschetta", "4.50")
	cartRepo := newFakeCartRepo()
	svc := NewCartService(cartRepo, menuRepo)

	if err := svc.Add(context.Background(), 1, 1, 0); err != nil {
		t.Fatalf("add: %v", err)
	}

	items, _ := svc.List(context.Background(), 1)
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("expected one line with quantity 1, got %+v", items)
	}
}

func TestCartListComputesLineTotals(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	menuRepo.add(1, "Greek Salad", "5.00")
	cartRepo := newFakeCartRepo()
	svc := NewCartService(cartRepo, menuRepo)
	ctx := context.Background()

	if err := svc.Add(ctx, 1, 1, 3); err != nil {
		t.Fatalf("add: %v", err)
	}

	items, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if want := decimal.RequireFromString("15.00"); !items[0].TotalPrice.Equal(want) {
		t.Errorf("total price = %s, want %s", items[0].TotalPrice, want)
	}
}

func TestCartClearSucceedsWhenEmpty(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), newFakeMenuRepo())

	if err := svc.Clear(context.Background(), 1); err != nil {
		t.Fatalf("clear on empty cart: %v", err)
	}
}
