package dto

import (
	"time"

	"github.com/spec-kit/registration-service/internal/domain"
)

// ServiceRecordRequest is the raw record upsert payload. Mirrors the backend
// row; every field except ticket_id is optional.
type ServiceRecordRequest struct {
	TicketID              string `json:"ticket_id"`
	ServiceName           string `json:"service_name"`
	RegistrationType      string `json:"registration_type"`
	ServiceType           string `json:"service_type"`
	BusinessName          string `json:"business_name"`
	PackageName           string `json:"package_name"`
	PaymentStatus         string `json:"payment_status"`
	PaymentCompleted      bool   `json:"payment_completed"`
	RazorpayPaymentID     string `json:"razorpay_payment_id"`
	PaymentID             string `json:"payment_id"`
	ServiceStatus         string `json:"service_status"`
	TeamFillRequested     bool   `json:"team_fill_requested"`
	RegistrationSubmitted bool   `json:"registration_submitted"`
}

// ServiceRecordResponse is one admin-list row with derived fields attached.
type ServiceRecordResponse struct {
	TicketID              string                  `json:"ticket_id"`
	ServiceName           string                  `json:"service_name,omitempty"`
	RegistrationType      string                  `json:"registration_type,omitempty"`
	ServiceType           string                  `json:"service_type,omitempty"`
	BusinessName          string                  `json:"business_name,omitempty"`
	PackageName           string                  `json:"package_name,omitempty"`
	PaymentStatus         string                  `json:"payment_status,omitempty"`
	PaymentCompleted      bool                    `json:"payment_completed"`
	RazorpayPaymentID     string                  `json:"razorpay_payment_id,omitempty"`
	PaymentID             string                  `json:"payment_id,omitempty"`
	ServiceStatus         string                  `json:"service_status,omitempty"`
	TeamFillRequested     bool                    `json:"team_fill_requested"`
	RegistrationSubmitted bool                    `json:"registration_submitted"`
	CanonicalService      domain.CanonicalService `json:"canonical_service"`
	StatusLabel           domain.StatusLabel      `json:"status_label"`
	Progress              domain.ProgressBucket   `json:"progress"`
	CreatedAt             time.Time               `json:"created_at"`
	UpdatedAt             time.Time               `json:"updated_at"`
}

// UpdateServiceStatusRequest payload.
type UpdateServiceStatusRequest struct {
	TicketID string `json:"ticketId"`
	Status   string `json:"status"`
}

// UpdateServiceProgressRequest payload.
type UpdateServiceProgressRequest struct {
	TicketID string `json:"ticketId"`
	Progress string `json:"progress"`
}

// DeleteServiceRequest payload.
type DeleteServiceRequest struct {
	TicketID string `json:"ticketId"`
}
