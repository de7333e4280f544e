package events

import (
	"time"

	"github.com/spec-kit/registration-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventServiceStatusChanged EventType = "service_status_changed"
	EventServiceDeleted       EventType = "service_deleted"
	EventCouponApplied        EventType = "coupon_applied"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	StaffID   string      `json:"staff_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ServiceStatusChangedPayload payload.
type ServiceStatusChangedPayload struct {
	OldStatus string                `json:"old_status"`
	NewStatus string                `json:"new_status"`
	Progress  domain.ProgressBucket `json:"progress,omitempty"`
}

// ServiceDeletedPayload payload.
type ServiceDeletedPayload struct {
	CanonicalService domain.CanonicalService `json:"canonical_service"`
}

// CouponAppliedPayload payload.
type CouponAppliedPayload struct {
	Code          string  `json:"code"`
	PackageName   string  `json:"package_name"`
	OriginalPrice float64 `json:"original_price"`
	FinalPrice    float64 `json:"final_price"`
}
