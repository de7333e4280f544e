package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/registration-service/internal/domain"
)

// ServiceRecordFilter captures admin list query parameters. Classification
// and progress filters are applied by the service layer after derivation,
// since neither is stored.
type ServiceRecordFilter struct {
	SearchTerm *string
	Limit      int
	Offset     int
}

// ServiceRecordRepository encapsulates service record persistence.
type ServiceRecordRepository interface {
	Upsert(ctx context.Context, rec *domain.ServiceRecord) error
	GetByTicketID(ctx context.Context, ticketID string) (*domain.ServiceRecord, error)
	List(ctx context.Context, filter ServiceRecordFilter) ([]domain.ServiceRecord, error)
	UpdateStatus(ctx context.Context, ticketID, status string) error
	Delete(ctx context.Context, ticketID string) error
}

type serviceRecordRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRecordRepository instantiates the repository.
func NewServiceRecordRepository(pool *pgxpool.Pool) ServiceRecordRepository {
	return &serviceRecordRepository{pool: pool}
}

const serviceRecordColumns = `ticket_id, service_name, registration_type, service_type, business_name,
               package_name, payment_status, payment_completed, razorpay_payment_id, payment_id,
               service_status, team_fill_requested, registration_submitted, created_at, updated_at`

func (r *serviceRecordRepository) Upsert(ctx context.Context, rec *domain.ServiceRecord) error {
	const query = `
        INSERT INTO service_records (ticket_id, service_name, registration_type, service_type, business_name,
            package_name, payment_status, payment_completed, razorpay_payment_id, payment_id,
            service_status, team_fill_requested, registration_submitted)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        ON CONFLICT (ticket_id) DO UPDATE SET
            service_name=EXCLUDED.service_name,
            registration_type=EXCLUDED.registration_type,
            service_type=EXCLUDED.service_type,
            business_name=EXCLUDED.business_name,
            package_name=EXCLUDED.package_name,
            payment_status=EXCLUDED.payment_status,
            payment_completed=EXCLUDED.payment_completed,
            razorpay_payment_id=EXCLUDED.razorpay_payment_id,
            payment_id=EXCLUDED.payment_id,
            service_status=EXCLUDED.service_status,
            team_fill_requested=EXCLUDED.team_fill_requested,
            registration_submitted=EXCLUDED.registration_submitted,
            updated_at=NOW()
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		rec.TicketID,
		rec.ServiceName,
		rec.RegistrationType,
		rec.ServiceType,
		rec.BusinessName,
		rec.PackageName,
		rec.PaymentStatus,
		rec.PaymentCompleted,
		rec.RazorpayPaymentID,
		rec.PaymentID,
		rec.ServiceStatus,
		rec.TeamFillRequested,
		rec.RegistrationSubmitted,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
}

func (r *serviceRecordRepository) GetByTicketID(ctx context.Context, ticketID string) (*domain.ServiceRecord, error) {
	query := `SELECT ` + serviceRecordColumns + ` FROM service_records WHERE ticket_id=$1`

	var rec domain.ServiceRecord
	if err := r.pool.QueryRow(ctx, query, ticketID).Scan(
		&rec.TicketID,
		&rec.ServiceName,
		&rec.RegistrationType,
		&rec.ServiceType,
		&rec.BusinessName,
		&rec.PackageName,
		&rec.PaymentStatus,
		&rec.PaymentCompleted,
		&rec.RazorpayPaymentID,
		&rec.PaymentID,
		&rec.ServiceStatus,
		&rec.TeamFillRequested,
		&rec.RegistrationSubmitted,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *serviceRecordRepository) List(ctx context.Context, filter ServiceRecordFilter) ([]domain.ServiceRecord, error) {
	base := `SELECT ` + serviceRecordColumns + ` FROM service_records`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		args = append(args, "%"+strings.TrimSpace(*filter.SearchTerm)+"%")
		idx := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(ticket_id ILIKE $%d OR business_name ILIKE $%d OR service_name ILIKE $%d OR package_name ILIKE $%d)",
			idx, idx, idx, idx))
	}

	query := base + " WHERE " + strings.Join(clauses, " AND ") + " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.ServiceRecord{}
	for rows.Next() {
		var rec domain.ServiceRecord
		if err := rows.Scan(
			&rec.TicketID,
			&rec.ServiceName,
			&rec.RegistrationType,
			&rec.ServiceType,
			&rec.BusinessName,
			&rec.PackageName,
			&rec.PaymentStatus,
			&rec.PaymentCompleted,
			&rec.RazorpayPaymentID,
			&rec.PaymentID,
			&rec.ServiceStatus,
			&rec.TeamFillRequested,
			&rec.RegistrationSubmitted,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *serviceRecordRepository) UpdateStatus(ctx context.Context, ticketID, status string) error {
	const query = `UPDATE service_records SET service_status=$1, updated_at=NOW() WHERE ticket_id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, ticketID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *serviceRecordRepository) Delete(ctx context.Context, ticketID string) error {
	const query = `DELETE FROM service_records WHERE ticket_id=$1`
	cmd, err := r.pool.Exec(ctx, query, ticketID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
