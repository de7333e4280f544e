package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/registration-service/internal/domain"
)

// StaffRepository handles persistence for staff members.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.StaffMember) error
	GetByID(ctx context.Context, id string) (*domain.StaffMember, error)
	GetByEmail(ctx context.Context, email string) (*domain.StaffMember, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.StaffMember) error {
	const query = `
        INSERT INTO staff_members (name, email, password_hash, role, active_flag)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		staff.Name,
		staff.Email,
		staff.PasswordHash,
		staff.Role,
		staff.Active,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	const query = `
        SELECT id, name, email, password_hash, role, active_flag, created_at, updated_at
        FROM staff_members WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffMember, error) {
	const query = `
        SELECT id, name, email, password_hash, role, active_flag, created_at, updated_at
        FROM staff_members WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *staffRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE staff_members SET password_hash=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.StaffMember, error) {
	var staff domain.StaffMember
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&staff.ID,
		&staff.Name,
		&staff.Email,
		&staff.PasswordHash,
		&staff.Role,
		&staff.Active,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}
