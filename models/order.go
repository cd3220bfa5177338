package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus int

const (
	StatusPending        OrderStatus = 0
	StatusOutForDelivery OrderStatus = 1
	StatusDelivered      OrderStatus = 2
)

func (s OrderStatus) Valid() bool {
	return s >= StatusPending && s <= StatusDelivered
}

// CanTransitionTo reports whether moving to next is a forward step in the
// pending -> out_for_delivery -> delivered lifecycle.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return next.Valid() && next == s+1
}

func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusOutForDelivery:
		return "out_for_delivery"
	case StatusDelivered:
		return "delivered"
	}
	return "unknown"
}

type Order struct {
	ID             int             `json:"id"`
	UserID         int             `json:"user_id"`
	Username       string          `json:"user,omitempty"`
	DeliveryCrewID *int            `json:"delivery_crew_id,omitempty"`
	DeliveryCrew   *string         `json:"delivery_crew"`
	Status         OrderStatus     `json:"status"`
	Total          decimal.Decimal `json:"total"`
	Date           time.Time       `json:"date"`
	Items          []OrderItem     `json:"items,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID         int             `json:"id"`
	OrderID    int             `json:"order_id"`
	MenuItemID int             `json:"menu_item_id"`
	MenuItem   string          `json:"menuitem"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Price      decimal.Decimal `json:"price"`
}

// BuildOrderLines converts cart lines into order line items, freezing quantity
// and unit price and computing each line price. Returns the lines and their sum,
// which becomes the order total.
func BuildOrderLines(cart []CartItem) ([]OrderItem, decimal.Decimal) {
	items := make([]OrderItem, 0, len(cart))
	total := decimal.Zero
	for _, line := range cart {
		price := line.LineTotal()
		items = append(items, OrderItem{
			MenuItemID: line.MenuItemID,
			MenuItem:   line.MenuItem,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			Price:      price,
		})
		total = total.Add(price)
	}
	return items, total
}
