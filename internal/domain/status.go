package domain

// StatusLabel is the coarse lifecycle label shown on the admin list. It is a
// projection of record booleans and is never stored.
type StatusLabel string

const (
	StatusLabelNew               StatusLabel = "New"
	StatusLabelPaymentDone       StatusLabel = "Payment Done"
	StatusLabelRegistered        StatusLabel = "Registered"
	StatusLabelTeamFillRequested StatusLabel = "Team Fill Requested"
)

// ProgressBucket is the 3-value workflow state used for admin filtering.
// Derived from payment fields and the stored status text; also the input to
// the reducer that proposes a new status text.
type ProgressBucket string

const (
	ProgressOpen     ProgressBucket = "Open"
	ProgressOngoing  ProgressBucket = "Ongoing"
	ProgressResolved ProgressBucket = "Resolved"
)

// ParseProgressBucket validates client-supplied bucket values.
func ParseProgressBucket(value string) (ProgressBucket, bool) {
	switch ProgressBucket(value) {
	case ProgressOpen, ProgressOngoing, ProgressResolved:
		return ProgressBucket(value), true
	default:
		return "", false
	}
}

// Admin status vocabulary. These are the values admins normally write into
// service_status, but the column is unconstrained text and unknown values
// must be tolerated everywhere the status is read.
const (
	AdminStatusDataReceived     = "Data received"
	AdminStatusWIP              = "WIP"
	AdminStatusAwaitingGovt     = "Awaiting confirmation from the Govt"
	AdminStatusDataPending      = "Data Pending from Client"
	AdminStatusPaymentCompleted = "Payment completed"
	AdminStatusCompleted        = "Completed"
	AdminStatusTechnicalIssue   = "Technical Issue"
	AdminStatusPaymentPending   = "Payment pending"
)
