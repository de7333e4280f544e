package dto

// ApplyCouponRequest payload. The coupon is validated against every package
// independently.
type ApplyCouponRequest struct {
	Code     string                `json:"code"`
	Packages []PackageQuoteRequest `json:"packages"`
}

// PackageQuoteRequest describes one priced package.
type PackageQuoteRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PackageQuoteResponse carries the original price untouched so callers can
// render a strike-through.
type PackageQuoteResponse struct {
	PackageName        string  `json:"package_name"`
	OriginalPrice      float64 `json:"original_price"`
	Price              float64 `json:"price"`
	DiscountAmount     float64 `json:"discount_amount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	CouponApplied      bool    `json:"coupon_applied"`
	Message            string  `json:"message,omitempty"`
}
