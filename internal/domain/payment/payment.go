// Package payment creates gateway orders for the premium subscription
// plans.
package payment

import (
	"context"
	"errors"
)

// Plan is one purchasable subscription.
type Plan struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"` // major units (INR)
	PriceFormatted string `json:"priceFormatted"`
}

// Plans is the premium catalog.
var Plans = []Plan{
	{ID: "monthly", Name: "Monthly Plan", Price: 3000, PriceFormatted: "₹3,000"},
	{ID: "yearly", Name: "Yearly Plan", Price: 28000, PriceFormatted: "₹28,000"},
}

// Order is a created gateway order, ready for the hosted checkout widget.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

var (
	// ErrUnknownPlan rejects amounts that match no catalog plan.
	ErrUnknownPlan = errors.New("amount does not match any plan")
	// ErrOrderFailed wraps gateway failures; the caller may retry.
	ErrOrderFailed = errors.New("failed to create payment order")
	// ErrNotConfigured is returned when no gateway credentials are set.
	ErrNotConfigured = errors.New("payment gateway is not configured")
)

// OrderCreator talks to the payment gateway. Amount is in major units.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amount int64) (*Order, error)
}
