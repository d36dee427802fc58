package usecase

import "errors"

var (
	ErrProductNotFound = errors.New("product not available")
	ErrOrderNotFound   = errors.New("order not found")
	ErrDuplicate       = errors.New("duplicate idempotency key")
	ErrIDConflict      = errors.New("order id already exists")
	ErrLedgerExhausted = errors.New("could not allocate an order id")
)
