package markerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound        = errors.New("item not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadySold         = errors.New("item is not available")
	ErrDuplicateTxHash     = errors.New("transaction hash already recorded")
)

// business logic errors
var (
	ErrInvalidRequest  = errors.New("invalid request details")
	ErrNotSeller       = errors.New("requester is not the seller")
	ErrItemNotEditable = errors.New("item can no longer be modified")
)
