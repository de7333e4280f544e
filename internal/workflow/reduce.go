package workflow

import (
	"strings"

	"github.com/spec-kit/registration-service/internal/domain"
)

// detailedStatuses are admin-entered statuses that carry operational detail
// beyond the progress bucket. Matched as case-insensitive substrings so that
// decorated variants ("WIP - Data Pending from Client") are preserved too.
var detailedStatuses = []string{
	"data received",
	"awaiting confirmation from the govt",
	"awaiting confirmation from the government",
	"data pending from client",
	"technical issue",
}

func isDetailedStatus(status string) bool {
	lowered := strings.ToLower(status)
	for _, detailed := range detailedStatuses {
		if strings.Contains(lowered, detailed) {
			return true
		}
	}
	return false
}

// ReduceProgress computes the status string to persist for a desired progress
// bucket, given the record's current status text.
//
// Resolved is terminal and always writes "Completed", clobbering any detailed
// status. Ongoing and Open preserve a detailed status unchanged and otherwise
// write their bucket default ("WIP" / "Payment pending"). The changed result
// is false when the computed status is string-equal to the current one, so
// callers can skip the persistence round-trip.
func ReduceProgress(desired domain.ProgressBucket, currentStatus string) (newStatus string, changed bool) {
	switch desired {
	case domain.ProgressResolved:
		newStatus = domain.AdminStatusCompleted
	case domain.ProgressOngoing:
		if isDetailedStatus(currentStatus) {
			newStatus = currentStatus
		} else {
			newStatus = domain.AdminStatusWIP
		}
	case domain.ProgressOpen:
		if isDetailedStatus(currentStatus) {
			newStatus = currentStatus
		} else {
			newStatus = domain.AdminStatusPaymentPending
		}
	default:
		newStatus = currentStatus
	}
	return newStatus, newStatus != currentStatus
}
