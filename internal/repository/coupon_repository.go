package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/registration-service/internal/domain"
)

// CouponRepository handles persistence for discount coupons.
type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

type couponRepository struct {
	pool *pgxpool.Pool
}

// NewCouponRepository instantiates the repository.
func NewCouponRepository(pool *pgxpool.Pool) CouponRepository {
	return &couponRepository{pool: pool}
}

func (r *couponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	const query = `
        INSERT INTO coupons (code, kind, value, min_order_value, max_order_value, valid_from, valid_until, active_flag)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		strings.ToUpper(strings.TrimSpace(coupon.Code)),
		coupon.Kind,
		coupon.Value,
		coupon.MinOrderValue,
		coupon.MaxOrderValue,
		coupon.ValidFrom,
		coupon.ValidUntil,
		coupon.Active,
	).Scan(&coupon.ID, &coupon.CreatedAt, &coupon.UpdatedAt)
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	const query = `
        SELECT id, code, kind, value, min_order_value, max_order_value, valid_from, valid_until, active_flag, created_at, updated_at
        FROM coupons WHERE code=$1`

	var coupon domain.Coupon
	if err := r.pool.QueryRow(ctx, query, strings.ToUpper(strings.TrimSpace(code))).Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.Kind,
		&coupon.Value,
		&coupon.MinOrderValue,
		&coupon.MaxOrderValue,
		&coupon.ValidFrom,
		&coupon.ValidUntil,
		&coupon.Active,
		&coupon.CreatedAt,
		&coupon.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &coupon, nil
}
