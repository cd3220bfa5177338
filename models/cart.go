package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID         int             `json:"id"`
	UserID     int             `json:"user_id"`
	MenuItemID int             `json:"menu_item_id"`
	MenuItem   string          `json:"menuitem,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// LineTotal is the price of the whole line at the captured unit price.
func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
