package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTicketKnownPrefixes(t *testing.T) {
	engine := NewDefaultEngine()

	assert.Equal(t, "GST Registration", engine.ResolveTicket("GST_12345"))
	assert.Equal(t, "Private Limited Registration", engine.ResolveTicket("PVT_901"))
	assert.Equal(t, "12A Registration", engine.ResolveTicket("12A_77"))
	assert.Equal(t, "Startup India Registration", engine.ResolveTicket("STARTUP_3"))
}

func TestResolveTicketIsCaseInsensitive(t *testing.T) {
	engine := NewDefaultEngine()

	assert.Equal(t, "GST Registration", engine.ResolveTicket("gst_123"))
	assert.Equal(t, "Trademark Registration", engine.ResolveTicket("tm_55"))
}

func TestResolveTicketAliasPrefixesShareService(t *testing.T) {
	engine := NewDefaultEngine()

	assert.Equal(t, "Partnership Registration", engine.ResolveTicket("PART_9"))
	assert.Equal(t, "Partnership Registration", engine.ResolveTicket("PARTNERSHIP_9"))
	assert.Equal(t, "MSME Registration", engine.ResolveTicket("MSME_1"))
	assert.Equal(t, "MSME Registration", engine.ResolveTicket("UDYAM_1"))
}

func TestResolveTicketSpecificPrefixBeatsGeneric(t *testing.T) {
	engine := NewDefaultEngine()

	assert.Equal(t, "GST Annual Return Filing", engine.ResolveTicket("GSTR9_42"))
	assert.Equal(t, "GST Return Filing", engine.ResolveTicket("GSTR_42"))
	assert.Equal(t, "GST Registration", engine.ResolveTicket("GST_42"))
}

func TestResolveTicketNoSignal(t *testing.T) {
	engine := NewDefaultEngine()

	assert.Empty(t, engine.ResolveTicket(""))
	assert.Empty(t, engine.ResolveTicket("   "))
	assert.Empty(t, engine.ResolveTicket("XYZ-123"))
}
