package domain

import "time"

// CouponKind selects how the discount is computed.
type CouponKind string

const (
	CouponKindPercent CouponKind = "PERCENT"
	CouponKindFlat    CouponKind = "FLAT"
)

// Coupon models a discount code. Min/MaxOrderValue bound the package prices
// the coupon applies to, which is why validity is decided per package rather
// than once per checkout.
type Coupon struct {
	ID            string
	Code          string
	Kind          CouponKind
	Value         float64
	MinOrderValue float64
	MaxOrderValue float64
	ValidFrom     time.Time
	ValidUntil    time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
