package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GuestUserID is assigned to orders placed without an account.
const GuestUserID = "GUEST"

type Order struct {
	ID            string
	UserID        string
	PlayerID      string
	Game          string
	Region        string
	Notes         string
	Total         decimal.Decimal
	Currency      string
	Status        OrderStatus
	PaymentMethod string
	CreatedAt     time.Time
	Items         []OrderItem
	AutoDelivery  bool
}

// Clone returns a copy that does not share the Items backing array.
func (o Order) Clone() Order {
	if o.Items != nil {
		items := make([]OrderItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
	}
	return o
}

// OrderItem is the line snapshot taken at checkout. It never follows later
// catalog edits.
type OrderItem struct {
	ProductID string
	Name      string
	Quantity  int
	Price     decimal.Decimal
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type OrderStatus string

const (
	OrderCreated         OrderStatus = "created"
	OrderAwaitingPayment OrderStatus = "awaiting_payment"
	OrderProcessing      OrderStatus = "processing"
	OrderCompleted       OrderStatus = "completed"
	OrderCancelled       OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderCreated, OrderAwaitingPayment, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// CheckoutDetails is what the customer fills in on the checkout form.
type CheckoutDetails struct {
	Email          string
	PlayerID       string
	PlayerNickname string
	Region         string
	Game           string
	Server         string
	PaymentMethod  string
	PaymentChannel string
	PromoCode      string
	Notes          string
	AutoDelivery   bool
}
