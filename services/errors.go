package services

import "errors"

// Domain errors surfaced by the services. Controllers map these onto
// HTTP statuses; anything else is treated as an internal failure.
var (
	ErrInvalidID         = errors.New("invalid identifier")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrItemNotInCart     = errors.New("item not found in cart")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrCartBusy          = errors.New("cart is being modified concurrently, try again")
)
