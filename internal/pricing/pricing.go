// Package pricing computes coupon-adjusted package prices. Validation is
// per-package: a coupon judged valid against one price may fail thresholds on
// another, so every package re-validates at selection time.
package pricing

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/spec-kit/registration-service/internal/domain"
)

// ErrEmptyCode is returned before any lookup when no coupon code was given.
var ErrEmptyCode = errors.New("coupon code is required")

// Result is the outcome of validating a coupon against a single price.
type Result struct {
	Valid              bool
	DiscountPercentage float64
	DiscountAmount     float64
	FinalAmount        float64
	Message            string
}

// Validator validates a coupon code against a specific price.
type Validator interface {
	Validate(ctx context.Context, code string, price float64) (Result, error)
}

// Package is a priced package offered at checkout.
type Package struct {
	Name  string
	Price float64
}

// Quote carries both the untouched original price and the price to charge,
// so callers can render a strike-through. An invalid coupon leaves Price
// equal to OriginalPrice and records the failure reason; it never blocks
// checkout.
type Quote struct {
	PackageName        string
	OriginalPrice      float64
	Price              float64
	DiscountAmount     float64
	DiscountPercentage float64
	CouponApplied      bool
	Message            string
}

// Evaluate applies a coupon's rules to one price. Pure; the caller supplies
// the clock.
func Evaluate(coupon domain.Coupon, price float64, now time.Time) Result {
	if !coupon.Active {
		return Result{Message: "coupon is not active", FinalAmount: price}
	}
	if !coupon.ValidFrom.IsZero() && now.Before(coupon.ValidFrom) {
		return Result{Message: "coupon is not yet valid", FinalAmount: price}
	}
	if !coupon.ValidUntil.IsZero() && now.After(coupon.ValidUntil) {
		return Result{Message: "coupon has expired", FinalAmount: price}
	}
	if coupon.MinOrderValue > 0 && price < coupon.MinOrderValue {
		return Result{Message: "order value below coupon minimum", FinalAmount: price}
	}
	if coupon.MaxOrderValue > 0 && price > coupon.MaxOrderValue {
		return Result{Message: "order value above coupon maximum", FinalAmount: price}
	}

	var discount float64
	switch coupon.Kind {
	case domain.CouponKindPercent:
		discount = price * coupon.Value / 100
	case domain.CouponKindFlat:
		discount = math.Min(coupon.Value, price)
	default:
		return Result{Message: "unsupported coupon kind", FinalAmount: price}
	}

	discount = math.Round(discount*100) / 100
	final := price - discount
	var pct float64
	if price > 0 {
		pct = math.Round(discount/price*10000) / 100
	}
	return Result{
		Valid:              true,
		DiscountPercentage: pct,
		DiscountAmount:     discount,
		FinalAmount:        final,
	}
}

// QuotePackages validates the coupon against each package independently and
// derives a quote per package. Validator errors degrade to an undiscounted
// quote carrying the failure message; only an empty code aborts, and that
// before any validator call.
func QuotePackages(ctx context.Context, v Validator, code string, packages []Package) ([]Quote, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	quotes := make([]Quote, 0, len(packages))
	for _, pkg := range packages {
		quote := Quote{
			PackageName:   pkg.Name,
			OriginalPrice: pkg.Price,
			Price:         pkg.Price,
		}
		result, err := v.Validate(ctx, code, pkg.Price)
		switch {
		case err != nil:
			quote.Message = "coupon validation unavailable"
		case !result.Valid:
			quote.Message = result.Message
		default:
			quote.Price = result.FinalAmount
			quote.DiscountAmount = result.DiscountAmount
			quote.DiscountPercentage = result.DiscountPercentage
			quote.CouponApplied = true
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}
