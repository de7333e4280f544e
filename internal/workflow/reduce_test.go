package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/registration-service/internal/domain"
)

func TestReduceResolvedIsTerminalAndOverriding(t *testing.T) {
	status, changed := ReduceProgress(domain.ProgressResolved, "Data Pending from Client")
	assert.Equal(t, "Completed", status)
	assert.True(t, changed)

	status, changed = ReduceProgress(domain.ProgressResolved, "Completed")
	assert.Equal(t, "Completed", status)
	assert.False(t, changed)
}

func TestReduceOngoingPreservesDetailedStatus(t *testing.T) {
	status, changed := ReduceProgress(domain.ProgressOngoing, "Technical Issue")
	assert.Equal(t, "Technical Issue", status)
	assert.False(t, changed)

	// Substring containment, case-insensitive, decorated variants included.
	status, changed = ReduceProgress(domain.ProgressOngoing, "WIP - data pending from client (called twice)")
	assert.Equal(t, "WIP - data pending from client (called twice)", status)
	assert.False(t, changed)

	status, changed = ReduceProgress(domain.ProgressOngoing, "Awaiting confirmation from the Government")
	assert.Equal(t, "Awaiting confirmation from the Government", status)
	assert.False(t, changed)
}

func TestReduceOngoingDefaultsToWIP(t *testing.T) {
	status, changed := ReduceProgress(domain.ProgressOngoing, "")
	assert.Equal(t, "WIP", status)
	assert.True(t, changed)

	status, changed = ReduceProgress(domain.ProgressOngoing, "Payment pending")
	assert.Equal(t, "WIP", status)
	assert.True(t, changed)

	// Writing WIP over WIP is a no-op.
	status, changed = ReduceProgress(domain.ProgressOngoing, "WIP")
	assert.Equal(t, "WIP", status)
	assert.False(t, changed)
}

func TestReduceOpenPreservesDetailedStatus(t *testing.T) {
	status, changed := ReduceProgress(domain.ProgressOpen, "Data received")
	assert.Equal(t, "Data received", status)
	assert.False(t, changed)
}

func TestReduceOpenDefaultsToPaymentPending(t *testing.T) {
	status, changed := ReduceProgress(domain.ProgressOpen, "WIP")
	assert.Equal(t, "Payment pending", status)
	assert.True(t, changed)

	status, changed = ReduceProgress(domain.ProgressOpen, "Payment pending")
	assert.Equal(t, "Payment pending", status)
	assert.False(t, changed)
}

func TestReduceUnknownBucketKeepsStatus(t *testing.T) {
	status, changed := ReduceProgress(domain.ProgressBucket("Bogus"), "WIP")
	assert.Equal(t, "WIP", status)
	assert.False(t, changed)
}
