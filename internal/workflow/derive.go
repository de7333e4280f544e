// Package workflow projects service records onto the coarse status label and
// progress bucket shown in the admin list, and reduces a desired bucket back
// to a storable status string. Everything here is a pure function of its
// inputs.
package workflow

import (
	"strings"

	"github.com/spec-kit/registration-service/internal/domain"
)

// DeriveStatusLabel projects record booleans onto the 4-value status label.
// Conditions are checked in precedence order and the first match wins.
func DeriveStatusLabel(rec domain.ServiceRecord) domain.StatusLabel {
	switch {
	case rec.TeamFillRequested:
		return domain.StatusLabelTeamFillRequested
	case rec.RegistrationSubmitted:
		return domain.StatusLabelRegistered
	case rec.PaymentCompleted:
		return domain.StatusLabelPaymentDone
	default:
		return domain.StatusLabelNew
	}
}

// DeriveProgressBucket maps payment fields and the stored status text onto
// the 3-value progress bucket.
//
// An explicitly pending payment forces Open no matter what the status text
// says; a "completed" status is Resolved; any evidence of payment otherwise
// means work is Ongoing. The final Open fallback should not occur on
// well-formed records, since payment precedes ticket creation, but partial
// data must degrade to a filterable default.
func DeriveProgressBucket(rec domain.ServiceRecord) domain.ProgressBucket {
	paymentStatus := strings.ToLower(strings.TrimSpace(rec.PaymentStatus))
	if paymentStatus == "pending" || paymentStatus == "unpaid" {
		return domain.ProgressOpen
	}

	serviceStatus := strings.ToLower(strings.TrimSpace(rec.ServiceStatus))
	if serviceStatus == "completed" {
		return domain.ProgressResolved
	}

	paymentCompleted := rec.PaymentCompleted ||
		paymentStatus == "paid" ||
		paymentStatus == "payment_completed" ||
		rec.HasPaymentReference()
	if paymentCompleted {
		return domain.ProgressOngoing
	}

	return domain.ProgressOpen
}
