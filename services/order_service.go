package services

import (
	"context"

	"little-lemon/models"
)

type OrderService struct {
	orderRepo OrderRepository
	cartRepo  CartRepository
	groups    GroupDirectory
}

func NewOrderService(orderRepo OrderRepository, cartRepo CartRepository, groups GroupDirectory) *OrderService {
	return &OrderService{orderRepo: orderRepo, cartRepo: cartRepo, groups: groups}
}

// Place converts the caller's cart into an order. The repository performs the
// conversion atomically and re-checks emptiness under its row locks, so a cart
// cleared by a concurrent request still fails cleanly.
func (s *OrderService) Place(ctx context.Context, userID int) (*models.Order, error) {
	cart, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, models.ErrCartEmpty
	}
	return s.orderRepo.PlaceFromCart(ctx, userID)
}

func (s *OrderService) ListOwn(ctx context.Context, userID int) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// Get returns the order only when it belongs to the caller. Foreign orders
// read as not found so callers cannot probe for other users' order IDs.
func (s *OrderService) Get(ctx context.Context, userID, orderID int) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if isNotFound(err) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, models.ErrNotFound
	}
	return order, nil
}

func (s *OrderService) ListAssigned(ctx context.Context, crewID int) ([]models.Order, error) {
	return s.orderRepo.ListByCrew(ctx, crewID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.ListAll(ctx)
}

// ManagerUpdate reassigns the delivery crew and/or sets the status. A
// referenced crew user must exist and actually be in the delivery-crew group.
func (s *OrderService) ManagerUpdate(ctx context.Context, orderID int, req models.OrderUpdateRequest) error {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		if isNotFound(err) {
			return models.ErrNotFound
		}
		return err
	}

	var status *models.OrderStatus
	if req.Status != nil {
		st := models.OrderStatus(*req.Status)
		if !st.Valid() {
			return models.ErrInvalidStatus
		}
		status = &st
	}

	if req.DeliveryCrewID != nil {
		ok, err := s.groups.IsMember(ctx, *req.DeliveryCrewID, models.GroupDeliveryCrew)
		if err != nil {
			return err
		}
		if !ok {
			return models.ErrNotFound
		}
	}

	err := s.orderRepo.Update(ctx, orderID, req.DeliveryCrewID, status)
	if err != nil && isNotFound(err) {
		return models.ErrNotFound
	}
	return err
}

// CrewUpdate advances the status of an order assigned to the caller. Orders
// assigned to someone else (or to nobody) are reported as not found, the same
// answer as for a nonexistent order.
func (s *OrderService) CrewUpdate(ctx context.Context, crewID, orderID, rawStatus int) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if isNotFound(err) {
			return models.ErrNotFound
		}
		return err
	}
	if order.DeliveryCrewID == nil || *order.DeliveryCrewID != crewID {
		return models.ErrNotFound
	}

	status := models.OrderStatus(rawStatus)
	if !status.Valid() || !order.Status.CanTransitionTo(status) {
		return models.ErrInvalidStatus
	}

	return s.orderRepo.SetStatus(ctx, orderID, status)
}

func (s *OrderService) Delete(ctx context.Context, orderID int) error {
	err := s.orderRepo.Delete(ctx, orderID)
	if err != nil && isNotFound(err) {
		return models.ErrNotFound
	}
	return err
}
