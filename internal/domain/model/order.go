package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Item       string    `json:"item"`
	Amount     Amount    `json:"amount"`
	OrderTime  time.Time `json:"order_time"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OrderWithCustomer is an order joined with the denormalized fields of
// its customer, as returned by every read path.
type OrderWithCustomer struct {
	Order
	CustomerCode  string `json:"customer_code"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}
