package payment

import (
	"context"

	"github.com/rs/zerolog"
)

type Service struct {
	creator OrderCreator
	keyID   string
	log     zerolog.Logger
}

// NewService wires the gateway client. creator may be nil when no
// credentials are configured; order creation then fails cleanly.
func NewService(creator OrderCreator, keyID string, log zerolog.Logger) *Service {
	return &Service{creator: creator, keyID: keyID, log: log}
}

// Plans returns the premium catalog.
func (s *Service) Plans() []Plan {
	return Plans
}

// PublishableKey is handed to the hosted checkout widget.
func (s *Service) PublishableKey() string {
	return s.keyID
}

// CreateOrder validates the amount against the catalog and creates the
// gateway order.
func (s *Service) CreateOrder(ctx context.Context, amount int64) (*Order, error) {
	var plan *Plan
	for i := range Plans {
		if Plans[i].Price == amount {
			plan = &Plans[i]
			break
		}
	}
	if plan == nil {
		return nil, ErrUnknownPlan
	}
	if s.creator == nil {
		return nil, ErrNotConfigured
	}
	order, err := s.creator.CreateOrder(ctx, amount)
	if err != nil {
		s.log.Error().Err(err).Int64("amount", amount).Msg("order creation failed")
		return nil, err
	}
	s.log.Info().Str("order_id", order.ID).Str("plan", plan.ID).Msg("payment order created")
	return order, nil
}
