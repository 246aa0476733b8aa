package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type mockCreator struct {
	order *Order
	err   error
	calls int
}

func (m *mockCreator) CreateOrder(_ context.Context, amount int64) (*Order, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

func TestService_CreateOrder(t *testing.T) {
	creator := &mockCreator{order: &Order{ID: "order_123", Amount: 300000, Currency: "INR"}}
	svc := NewService(creator, "rzp_test_key", zerolog.Nop())

	order, err := svc.CreateOrder(context.Background(), 3000)
	if err != nil {
		t.Fatal(err)
	}
	if order.ID != "order_123" || order.Amount != 300000 {
		t.Errorf("order = %+v", order)
	}
	if creator.calls != 1 {
		t.Errorf("gateway called %d times", creator.calls)
	}
}

func TestService_CreateOrderUnknownAmount(t *testing.T) {
	creator := &mockCreator{}
	svc := NewService(creator, "rzp_test_key", zerolog.Nop())

	if _, err := svc.CreateOrder(context.Background(), 999); !errors.Is(err, ErrUnknownPlan) {
		t.Fatalf("expected ErrUnknownPlan, got %v", err)
	}
	if creator.calls != 0 {
		t.Error("gateway called for unknown amount")
	}
}

func TestService_CreateOrderNotConfigured(t *testing.T) {
	svc := NewService(nil, "", zerolog.Nop())

	if _, err := svc.CreateOrder(context.Background(), 3000); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestService_CreateOrderGatewayFailure(t *testing.T) {
	creator := &mockCreator{err: ErrOrderFailed}
	svc := NewService(creator, "rzp_test_key", zerolog.Nop())

	if _, err := svc.CreateOrder(context.Background(), 28000); !errors.Is(err, ErrOrderFailed) {
		t.Fatalf("expected ErrOrderFailed, got %v", err)
	}
}

func TestService_Plans(t *testing.T) {
	svc := NewService(nil, "rzp_test_key", zerolog.Nop())

	plans := svc.Plans()
	if len(plans) != 2 {
		t.Fatalf("got %d plans", len(plans))
	}
	if plans[0].Price != 3000 || plans[1].Price != 28000 {
		t.Errorf("plans = %+v", plans)
	}
	if svc.PublishableKey() != "rzp_test_key" {
		t.Errorf("key = %q", svc.PublishableKey())
	}
}
