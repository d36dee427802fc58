package entity

import "errors"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCancelled Status = "Cancelled"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidPhone    = errors.New("phone number required")
)

// Order is the ledger record for a placed order. The ledger owns it
// exclusively; all mutation goes through the ledger's Update.
type Order struct {
	ID          string  `json:"order_id"`
	Item        string  `json:"item"` // canonical product name
	Quantity    int     `json:"quantity"`
	PhoneNumber string  `json:"phone_number"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	Status      Status  `json:"status"`
	ETA         int     `json:"eta"` // delivery estimate, days
}

func (o *Order) Validate() error {
	if o.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if o.PhoneNumber == "" {
		return ErrInvalidPhone
	}
	return nil
}
