package service

import "errors"

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")

	// Conflict family: business-rule violations detected at commit
	// time. None of these may leave partial state behind.
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrDuplicateReview   = errors.New("product already reviewed")
	ErrDuplicateWishlist = errors.New("product already in wishlist")
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrInvalidStatus     = errors.New("invalid order status")
)
