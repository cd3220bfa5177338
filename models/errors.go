package models

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrCartEmpty     = errors.New("no items in the cart")
	ErrInvalidStatus = errors.New("invalid order status")
)
