package service

import "errors"

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrSupplierNotFound  = errors.New("supplier not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateRequest  = errors.New("idempotency key already used")
)
