package domain

import "time"

// ServiceRecord is the raw service row as stored by the backend. Every field
// except TicketID is optional noise: free text entered by operators, flags set
// by payment callbacks, or values copied from stale package selections. The
// classify and workflow packages derive all presentation state from it.
type ServiceRecord struct {
	TicketID              string
	ServiceName           string
	RegistrationType      string
	ServiceType           string
	BusinessName          string
	PackageName           string
	PaymentStatus         string
	PaymentCompleted      bool
	RazorpayPaymentID     string
	PaymentID             string
	ServiceStatus         string
	TeamFillRequested     bool
	RegistrationSubmitted bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HasPaymentReference reports whether any gateway reference is attached.
func (r ServiceRecord) HasPaymentReference() bool {
	return r.RazorpayPaymentID != "" || r.PaymentID != ""
}
