package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/registration-service/internal/domain"
)

func TestDeriveStatusLabelPrecedence(t *testing.T) {
	// Team fill wins even with every other flag set.
	rec := domain.ServiceRecord{
		TeamFillRequested:     true,
		RegistrationSubmitted: true,
		PaymentCompleted:      true,
	}
	assert.Equal(t, domain.StatusLabelTeamFillRequested, DeriveStatusLabel(rec))

	rec.TeamFillRequested = false
	assert.Equal(t, domain.StatusLabelRegistered, DeriveStatusLabel(rec))

	rec.RegistrationSubmitted = false
	assert.Equal(t, domain.StatusLabelPaymentDone, DeriveStatusLabel(rec))

	rec.PaymentCompleted = false
	assert.Equal(t, domain.StatusLabelNew, DeriveStatusLabel(rec))
}

func TestDeriveProgressPendingPaymentOverridesEverything(t *testing.T) {
	rec := domain.ServiceRecord{
		PaymentStatus:     "pending",
		ServiceStatus:     "Completed",
		RazorpayPaymentID: "pay_abc",
	}
	assert.Equal(t, domain.ProgressOpen, DeriveProgressBucket(rec))

	rec.PaymentStatus = " Unpaid "
	assert.Equal(t, domain.ProgressOpen, DeriveProgressBucket(rec))
}

func TestDeriveProgressCompletedStatusResolves(t *testing.T) {
	rec := domain.ServiceRecord{
		PaymentStatus: "paid",
		ServiceStatus: "  Completed ",
	}
	assert.Equal(t, domain.ProgressResolved, DeriveProgressBucket(rec))
}

func TestDeriveProgressPaymentEvidenceMeansOngoing(t *testing.T) {
	cases := []domain.ServiceRecord{
		{PaymentCompleted: true},
		{PaymentStatus: "paid"},
		{PaymentStatus: "payment_completed"},
		{RazorpayPaymentID: "pay_abc"},
		{PaymentID: "order_123"},
	}
	for _, rec := range cases {
		rec.ServiceStatus = "WIP"
		assert.Equal(t, domain.ProgressOngoing, DeriveProgressBucket(rec), "record %+v", rec)
	}
}

func TestDeriveProgressFallbackOpen(t *testing.T) {
	assert.Equal(t, domain.ProgressOpen, DeriveProgressBucket(domain.ServiceRecord{}))

	rec := domain.ServiceRecord{ServiceStatus: "Data received"}
	assert.Equal(t, domain.ProgressOpen, DeriveProgressBucket(rec))
}
