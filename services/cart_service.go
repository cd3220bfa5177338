package services

import (
	"context"

	"little-lemon/models"
)

type CartService struct {
	cartRepo CartRepository
	menuRepo MenuRepository
}

func NewCartService(cartRepo CartRepository, menuRepo MenuRepository) *CartService {
	return &CartService{cartRepo: cartRepo, menuRepo: menuRepo}
}

// Add puts quantity units of a menu item into the user's cart. A first add
// captures the item's current price; a repeat add only accumulates quantity.
func (s *CartService) Add(ctx context.Context, userID, menuItemID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	item, err := s.menuRepo.FindByID(ctx, menuItemID)
	if err != nil {
		if isNotFound(err) {
			return models.ErrNotFound
		}
		return err
	}

	return s.cartRepo.Upsert(ctx, userID, menuItemID, quantity, item.Price)
}

func (s *CartService) List(ctx context.Context, userID int) ([]models.CartItem, error) {
	return s.cartRepo.ListByUser(ctx, userID)
}

func (s *CartService) Clear(ctx context.Context, userID int) error {
	return s.cartRepo.ClearByUser(ctx, userID)
}
