package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderStatusValid(t *testing.T) {
	tests := []struct {
		name   string
		status OrderStatus
		want   bool
	}{
		{"pending", StatusPending, true},
		{"out for delivery", StatusOutForDelivery, true},
		{"delivered", StatusDelivered, true},
		{"negative", OrderStatus(-1), false},
		{"out of range", OrderStatus(3), false},
		{"far out of range", OrderStatus(42), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to out for delivery", StatusPending, StatusOutForDelivery, true},
		{"out for delivery to delivered", StatusOutForDelivery, StatusDelivered, true},
		{"pending to delivered skips a step", StatusPending, StatusDelivered, false},
		{"delivered is terminal", StatusDelivered, StatusPending, false},
		{"no going back", StatusOutForDelivery, StatusPending, false},
		{"same status is not a transition", StatusPending, StatusPending, false},
		{"invalid target", StatusDelivered, OrderStatus(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%d -> %d) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestBuildOrderLines(t *testing.T) {
	cart := []CartItem{
		{MenuItemID: 1, MenuItem: "Greek Salad", Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")},
		{MenuItemID: 2, MenuItem: "Lemon Dessert", Quantity: 1, UnitPrice: decimal.RequireFromString("3.00")},
	}

	items, total := BuildOrderLines(cart)

	if len(items) != 2 {
		t.Fatalf("expected 2 order lines, got %d", len(items))
	}
	if want := decimal.RequireFromString("13.00"); !total.Equal(want) {
		t.Errorf("total = %s, want %s", total, want)
	}
	if want := decimal.RequireFromString("10.00"); !items[0].Price.Equal(want) {
		t.Errorf("first line price = %s, want %s", items[0].Price, want)
	}
	if want := decimal.RequireFromString("3.00"); !items[1].Price.Equal(want) {
		t.Errorf("second line price = %s, want %s", items[1].Price, want)
	}
	if items[0].Quantity != 2 || items[1].Quantity != 1 {
		t.Errorf("quantities not copied from cart lines")
	}
	if items[0].MenuItem != "Greek Salad" || items[1].MenuItem != "Lemon Dessert" {
		t.Errorf("titles not copied from cart lines")
	}
}

func TestBuildOrderLinesEmptyCart(t *testing.T) {
	items, total := BuildOrderLines(nil)
	if len(items) != 0 {
		t.Errorf("expected no lines, got %d", len(items))
	}
	if !total.IsZero() {
		t.Errorf("total = %s, want 0", total)
	}
}
