package services

import (
	"context"
	"testing"

	"little-lemon/models"

	"github.com/shopspring/decimal"
)

func TestMenuReplaceOverwritesAllFields(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	svc := NewMenuService(menuRepo, nil)
	ctx := context.Background()

	item, err := svc.Create(ctx, models.MenuItemRequest{
		Title: "Greek Salad", Price: decimal.RequireFromString("5.00"), Featured: true, CategoryID: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Replace(ctx, item.ID, models.MenuItemRequest{
		Title: "Village Salad", Price: decimal.RequireFromString("6.00"), CategoryID: 2,
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	if updated.Title != "Village Salad" || updated.CategoryID != 2 {
		t.Errorf("fields not replaced: %+v", updated)
	}
	if updated.Featured {
		t.Errorf("featured should take the request's zero value on full replace")
	}
}

func TestMenuPatchKeepsUnsetFields(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	svc := NewMenuService(menuRepo, nil)
	ctx := context.Background()

	item, err := svc.Create(ctx, models.MenuItemRequest{
		Title: "Lemon Dessert", Price: decimal.RequireFromString("3.00"), Featured: true, CategoryID: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newPrice := decimal.RequireFromString("3.50")
	patched, err := svc.Patch(ctx, item.ID, models.MenuItemPatchRequest{Price: &newPrice})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}

	if !patched.Price.Equal(newPrice) {
		t.Errorf("price = %s, want %s", patched.Price, newPrice)
	}
	if patched.Title != "Lemon Dessert" || !patched.Featured || patched.CategoryID != 1 {
		t.Errorf("unset fields were modified: %+v", patched)
	}
}

func TestMenuNotFound(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepo(), nil)
	ctx := context.Background()

	if _, err := svc.Get(ctx, 42); err != models.ErrNotFound {
		t.Errorf("get: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 42); err != models.ErrNotFound {
		t.Errorf("delete: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Replace(ctx, 42, models.MenuItemRequest{Title: "x", Price: decimal.Zero, CategoryID: 1}); err != models.ErrNotFound {
		t.Errorf("replace: expected ErrNotFound, got %v", err)
	}
}
