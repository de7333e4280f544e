package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/registration-service/internal/events"
	"github.com/spec-kit/registration-service/internal/pricing"
	"github.com/spec-kit/registration-service/internal/repository"
)

// PricingService validates coupons against stored rules and quotes package
// prices. It implements pricing.Validator.
type PricingService struct {
	coupons    repository.CouponRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewPricingService constructs the service.
func NewPricingService(coupons repository.CouponRepository, dispatcher events.Dispatcher, logger *zap.Logger) *PricingService {
	return &PricingService{coupons: coupons, dispatcher: dispatcher, logger: logger}
}

// Validate checks one coupon code against one price. An unknown code is a
// non-valid result, not an error; checkout proceeds undiscounted.
func (s *PricingService) Validate(ctx context.Context, code string, price float64) (pricing.Result, error) {
	coupon, err := s.coupons.GetByCode(ctx, code)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pricing.Result{Message: "invalid coupon code", FinalAmount: price}, nil
		}
		return pricing.Result{}, err
	}
	return pricing.Evaluate(*coupon, price, time.Now()), nil
}

// QuotePackages re-validates the coupon per package and emits an event for
// every successful application.
func (s *PricingService) QuotePackages(ctx context.Context, code string, packages []pricing.Package) ([]pricing.Quote, error) {
	quotes, err := pricing.QuotePackages(ctx, s, code, packages)
	if err != nil {
		return nil, err
	}
	for _, quote := range quotes {
		if !quote.CouponApplied {
			continue
		}
		s.publishEvent(ctx, events.Event{
			Type: events.EventCouponApplied,
			Payload: events.CouponAppliedPayload{
				Code:          code,
				PackageName:   quote.PackageName,
				OriginalPrice: quote.OriginalPrice,
				FinalPrice:    quote.Price,
			},
		})
	}
	return quotes, nil
}

func (s *PricingService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
