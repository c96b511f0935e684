package services

import "errors"

var (
	// ErrProductNotFound: add-to-cart referenced a product id that does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrCartItemNotFound: the item id does not exist or belongs to someone else.
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrCartEmpty is the benign no-op outcome of checking out an empty cart.
	ErrCartEmpty = errors.New("cart is empty")
)
