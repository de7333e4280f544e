package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/registration-service/internal/domain"
)

func activePercentCoupon() domain.Coupon {
	return domain.Coupon{
		Code:          "SAVE10",
		Kind:          domain.CouponKindPercent,
		Value:         10,
		MinOrderValue: 1000,
		Active:        true,
	}
}

func TestEvaluatePercentDiscount(t *testing.T) {
	result := Evaluate(activePercentCoupon(), 5000, time.Now())

	require.True(t, result.Valid)
	assert.Equal(t, 500.0, result.DiscountAmount)
	assert.Equal(t, 4500.0, result.FinalAmount)
	assert.Equal(t, 10.0, result.DiscountPercentage)
}

func TestEvaluateFlatDiscountCappedAtPrice(t *testing.T) {
	coupon := domain.Coupon{Code: "FLAT2K", Kind: domain.CouponKindFlat, Value: 2000, Active: true}

	result := Evaluate(coupon, 1500, time.Now())
	require.True(t, result.Valid)
	assert.Equal(t, 1500.0, result.DiscountAmount)
	assert.Equal(t, 0.0, result.FinalAmount)
}

func TestEvaluateThresholds(t *testing.T) {
	coupon := activePercentCoupon()
	coupon.MaxOrderValue = 10000

	// Same coupon, three prices: only the middle one qualifies.
	below := Evaluate(coupon, 500, time.Now())
	within := Evaluate(coupon, 5000, time.Now())
	above := Evaluate(coupon, 20000, time.Now())

	assert.False(t, below.Valid)
	assert.NotEmpty(t, below.Message)
	assert.True(t, within.Valid)
	assert.False(t, above.Valid)
	assert.NotEmpty(t, above.Message)
}

func TestEvaluateInactiveAndExpired(t *testing.T) {
	now := time.Now()

	coupon := activePercentCoupon()
	coupon.Active = false
	assert.False(t, Evaluate(coupon, 5000, now).Valid)

	coupon = activePercentCoupon()
	coupon.ValidUntil = now.Add(-time.Hour)
	assert.False(t, Evaluate(coupon, 5000, now).Valid)

	coupon = activePercentCoupon()
	coupon.ValidFrom = now.Add(time.Hour)
	assert.False(t, Evaluate(coupon, 5000, now).Valid)
}

// thresholdValidator evaluates a fixed coupon, mirroring the repository-backed
// validator without a database.
type thresholdValidator struct {
	coupon domain.Coupon
	err    error
}

func (v thresholdValidator) Validate(_ context.Context, _ string, price float64) (Result, error) {
	if v.err != nil {
		return Result{}, v.err
	}
	return Evaluate(v.coupon, price, time.Now()), nil
}

func TestQuotePackagesRevalidatesPerPackage(t *testing.T) {
	validator := thresholdValidator{coupon: activePercentCoupon()}
	packages := []Package{
		{Name: "Starter", Price: 499},
		{Name: "Growth", Price: 4999},
	}

	quotes, err := QuotePackages(context.Background(), validator, "SAVE10", packages)
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	// Below the coupon minimum: undiscounted, reason surfaced, not blocked.
	assert.False(t, quotes[0].CouponApplied)
	assert.Equal(t, 499.0, quotes[0].Price)
	assert.Equal(t, 499.0, quotes[0].OriginalPrice)
	assert.NotEmpty(t, quotes[0].Message)

	assert.True(t, quotes[1].CouponApplied)
	assert.Equal(t, 4999.0, quotes[1].OriginalPrice)
	assert.InDelta(t, 4499.1, quotes[1].Price, 0.001)
	assert.InDelta(t, 499.9, quotes[1].DiscountAmount, 0.001)
}

func TestQuotePackagesEmptyCodeIsLocalError(t *testing.T) {
	_, err := QuotePackages(context.Background(), thresholdValidator{}, "", []Package{{Name: "Starter", Price: 499}})
	assert.ErrorIs(t, err, ErrEmptyCode)
}

func TestQuotePackagesValidatorFailureDoesNotBlockCheckout(t *testing.T) {
	validator := thresholdValidator{err: errors.New("backend down")}

	quotes, err := QuotePackages(context.Background(), validator, "SAVE10", []Package{{Name: "Growth", Price: 4999}})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.False(t, quotes[0].CouponApplied)
	assert.Equal(t, 4999.0, quotes[0].Price)
	assert.Equal(t, "coupon validation unavailable", quotes[0].Message)
}
