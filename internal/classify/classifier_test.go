package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/registration-service/internal/domain"
)

func TestClassifyEmptyRecordFallsBackToOther(t *testing.T) {
	engine := NewDefaultEngine()

	assert.Equal(t, domain.ServiceOther, engine.Classify(domain.ServiceRecord{}))
}

func TestClassifyIsIdempotent(t *testing.T) {
	engine := NewDefaultEngine()
	rec := domain.ServiceRecord{TicketID: "GST_1", PackageName: "Growth"}

	first := engine.Classify(rec)
	second := engine.Classify(rec)
	assert.Equal(t, first, second)
}

func TestClassifyFieldPriorityOrder(t *testing.T) {
	engine := NewDefaultEngine()

	// service_name outranks every other text field and the ticket.
	rec := domain.ServiceRecord{
		TicketID:         "GST_1",
		ServiceName:      "Trademark Registration",
		RegistrationType: "FSSAI Registration",
	}
	assert.Equal(t, domain.ServiceTrademark, engine.Classify(rec))

	// registration_type next.
	rec = domain.ServiceRecord{
		TicketID:         "GST_1",
		RegistrationType: "FSSAI Registration",
	}
	assert.Equal(t, domain.ServiceFSSAI, engine.Classify(rec))

	// ticket outranks business_name.
	rec = domain.ServiceRecord{
		TicketID:     "MSME_4",
		BusinessName: "Acme Private Limited",
	}
	assert.Equal(t, domain.ServiceMSME, engine.Classify(rec))

	// business_name is the last text signal.
	rec = domain.ServiceRecord{BusinessName: "Acme Private Limited"}
	assert.Equal(t, domain.ServicePrivateLimited, engine.Classify(rec))
}

func TestClassifyTierNameCarriesNoSignal(t *testing.T) {
	engine := NewDefaultEngine()

	for _, tier := range []string{"Starter", "Growth", "pro", "BASIC"} {
		rec := domain.ServiceRecord{PackageName: tier}
		assert.Equal(t, domain.ServiceOther, engine.Classify(rec), "tier %q", tier)
	}

	// With a tier package the ticket still classifies the record.
	rec := domain.ServiceRecord{TicketID: "FSSAI_2", PackageName: "Growth"}
	assert.Equal(t, domain.ServiceFSSAI, engine.Classify(rec))
}

func TestClassifyMismatchGuardTicketBeatsPackage(t *testing.T) {
	engine := NewDefaultEngine()

	rec := domain.ServiceRecord{
		TicketID:    "GST_123",
		PackageName: "Private Limited Registration",
	}
	assert.Equal(t, domain.ServiceGSTRegistration, engine.Classify(rec))

	rec = domain.ServiceRecord{
		TicketID:    "STARTUP_9",
		PackageName: "Private Limited Company - Pro",
	}
	assert.Equal(t, domain.ServiceStartupIndia, engine.Classify(rec))

	rec = domain.ServiceRecord{
		TicketID:    "PROP_2",
		PackageName: "private limited",
	}
	assert.Equal(t, domain.ServiceProprietorship, engine.Classify(rec))
}

func TestClassifyMismatchGuardDoesNotFireForOtherTickets(t *testing.T) {
	engine := NewDefaultEngine()

	// A Private-Limited package on a trademark ticket is not the known
	// defect; with no higher-priority field the ticket still wins only via
	// the normal fields chain.
	rec := domain.ServiceRecord{
		TicketID:    "TM_5",
		PackageName: "Private Limited Registration",
	}
	assert.Equal(t, domain.ServiceTrademark, engine.Classify(rec))
}

func TestClassifyPackageNameUsedWhenNothingElseMatches(t *testing.T) {
	engine := NewDefaultEngine()

	rec := domain.ServiceRecord{PackageName: "FSSAI Basic Package"}
	assert.Equal(t, domain.ServiceFSSAI, engine.Classify(rec))
}

func TestClassifyTotalityOverFieldCombinations(t *testing.T) {
	engine := NewDefaultEngine()
	catalog := map[domain.CanonicalService]struct{}{domain.ServiceOther: {}}
	for _, svc := range domain.Catalog() {
		catalog[svc] = struct{}{}
	}

	tickets := []string{"", "GST_1", "JUNK-1"}
	texts := []string{"", "GST Registration", "garbage value"}
	packages := []string{"", "Growth", "Private Limited Registration", "nonsense"}
	for _, ticket := range tickets {
		for _, text := range texts {
			for _, pkg := range packages {
				rec := domain.ServiceRecord{
					TicketID:    ticket,
					ServiceName: text,
					PackageName: pkg,
				}
				got := engine.Classify(rec)
				_, inCatalog := catalog[got]
				assert.True(t, inCatalog, "record %+v classified to %q", rec, got)
			}
		}
	}
}

func TestClassifyWithPartialRuleTables(t *testing.T) {
	engine := NewEngine(
		[]PrefixRule{{Prefix: "GST_", Service: "GST Registration"}},
		[]TextRule{{Match: []string{"gst"}, Service: domain.ServiceGSTRegistration}},
	)

	assert.Equal(t, domain.ServiceGSTRegistration, engine.Classify(domain.ServiceRecord{TicketID: "GST_1"}))
	assert.Equal(t, domain.ServiceOther, engine.Classify(domain.ServiceRecord{TicketID: "PVT_1"}))
}
