package models

import "errors"

// Purchase and wallet failures. All of these are recoverable at the API
// boundary and map onto user-facing dialog messages.
var (
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInsufficientFunds = errors.New("insufficient funds to complete the transaction")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrPurchaseFailed    = errors.New("could not complete the purchase")
	ErrAccountBanned     = errors.New("account is banned")
	ErrAccountNotFound   = errors.New("account not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrStockItemNotFound = errors.New("stock item not found")
)
