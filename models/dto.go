package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CategoryRequest struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

type MenuItemRequest struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Featured   bool            `json:"featured"`
	CategoryID int             `json:"category_id" binding:"required"`
}

// MenuItemPatchRequest carries partial updates; nil fields are left untouched.
type MenuItemPatchRequest struct {
	Title      *string          `json:"title"`
	Price      *decimal.Decimal `json:"price"`
	Featured   *bool            `json:"featured"`
	CategoryID *int             `json:"category_id"`
}

type GroupUserRequest struct {
	UserID int `json:"user_id" binding:"required"`
}

type CartAddRequest struct {
	MenuItemID int `json:"menuitem_id" binding:"required"`
	Quantity   int `json:"quantity"`
}

type OrderUpdateRequest struct {
	DeliveryCrewID *int `json:"delivery_crew_id"`
	Status         *int `json:"status"`
}

type CrewStatusRequest struct {
	Status *int `json:"status" binding:"required"`
}
