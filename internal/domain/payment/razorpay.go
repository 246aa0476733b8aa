package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayCreator creates real orders on the Razorpay gateway.
type RazorpayCreator struct {
	client *razorpay.Client
}

func NewRazorpayCreator(keyID, keySecret string) (*RazorpayCreator, error) {
	if keyID == "" || keySecret == "" {
		return nil, ErrNotConfigured
	}
	return &RazorpayCreator{client: razorpay.NewClient(keyID, keySecret)}, nil
}

func (r *RazorpayCreator) CreateOrder(ctx context.Context, amount int64) (*Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	receipt := "receipt_" + uuid.NewString()
	data := map[string]interface{}{
		"amount":   amount * 100, // smallest currency unit
		"currency": "INR",
		"receipt":  receipt,
	}
	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderFailed, err)
	}

	order := &Order{Currency: "INR", Receipt: receipt}
	if id, ok := body["id"].(string); ok {
		order.ID = id
	}
	if amt, ok := body["amount"].(float64); ok {
		order.Amount = int64(amt)
	} else {
		order.Amount = amount * 100
	}
	if cur, ok := body["currency"].(string); ok {
		order.Currency = cur
	}
	if order.ID == "" {
		return nil, fmt.Errorf("%w: gateway returned no order id", ErrOrderFailed)
	}
	return order, nil
}
