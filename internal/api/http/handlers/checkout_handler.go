package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/registration-service/internal/api/dto"
	"github.com/spec-kit/registration-service/internal/pricing"
	"github.com/spec-kit/registration-service/internal/service"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

// CheckoutHandler serves coupon-adjusted package quotes.
type CheckoutHandler struct {
	pricing *service.PricingService
}

// NewCheckoutHandler constructs handler.
func NewCheckoutHandler(pricingService *service.PricingService) *CheckoutHandler {
	return &CheckoutHandler{pricing: pricingService}
}

// ApplyCoupon POST /checkout/apply-coupon.
func (h *CheckoutHandler) ApplyCoupon(c *fiber.Ctx) error {
	var req dto.ApplyCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if len(req.Packages) == 0 {
		return apperrors.NewValidationError("at least one package required", nil)
	}

	packages := make([]pricing.Package, 0, len(req.Packages))
	for _, pkg := range req.Packages {
		if pkg.Price < 0 {
			return apperrors.NewValidationError("package price must not be negative", map[string]any{"package": pkg.Name})
		}
		packages = append(packages, pricing.Package{Name: pkg.Name, Price: pkg.Price})
	}

	quotes, err := h.pricing.QuotePackages(c.UserContext(), strings.TrimSpace(req.Code), packages)
	if err != nil {
		if errors.Is(err, pricing.ErrEmptyCode) {
			return apperrors.NewValidationError("coupon code required", nil)
		}
		return err
	}

	items := make([]dto.PackageQuoteResponse, 0, len(quotes))
	for _, quote := range quotes {
		items = append(items, dto.PackageQuoteResponse{
			PackageName:        quote.PackageName,
			OriginalPrice:      quote.OriginalPrice,
			Price:              quote.Price,
			DiscountAmount:     quote.DiscountAmount,
			DiscountPercentage: quote.DiscountPercentage,
			CouponApplied:      quote.CouponApplied,
			Message:            quote.Message,
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}
