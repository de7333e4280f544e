package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/registration-service/internal/domain"
)

func TestNormalizeGSTOrdering(t *testing.T) {
	engine := NewDefaultEngine()

	// Specific GST filings must win over the generic registration rule.
	assert.Equal(t, domain.ServiceGSTAnnualReturn, engine.Normalize("GST Annual Return Filing"))
	assert.Equal(t, domain.ServiceGSTAmendment, engine.Normalize("GST Amendment"))
	assert.Equal(t, domain.ServiceGSTNotice, engine.Normalize("GST Notice Reply"))
	assert.Equal(t, domain.ServiceGSTCancellation, engine.Normalize("GST Cancellation"))
	assert.Equal(t, domain.ServiceGSTReturn, engine.Normalize("GST Return Filing"))
	assert.Equal(t, domain.ServiceGSTLUT, engine.Normalize("GST LUT Filing"))
	assert.Equal(t, domain.ServiceGSTRegistration, engine.Normalize("GST Registration"))
	assert.Equal(t, domain.ServiceGSTRegistration, engine.Normalize("New GST"))
}

func TestNormalizePartnershipVersusLLP(t *testing.T) {
	engine := NewDefaultEngine()

	assert.Equal(t, domain.ServicePartnershipFirm, engine.Normalize("Partnership Firm Registration"))
	assert.Equal(t, domain.ServiceLLP, engine.Normalize("LLP Registration"))
	assert.Equal(t, domain.ServiceLLP, engine.Normalize("Limited Liability Partnership"))
	assert.Equal(t, domain.ServiceLLPAnnualFiling, engine.Normalize("LLP Annual Filing"))
}

func TestNormalizeNGOOrdering(t *testing.T) {
	engine := NewDefaultEngine()

	assert.Equal(t, domain.ServiceNGODarpan, engine.Normalize("NGO Darpan Registration"))
	assert.Equal(t, domain.ServiceNGO, engine.Normalize("NGO Registration"))
}

func TestNormalizeAuditOrdering(t *testing.T) {
	engine := NewDefaultEngine()

	assert.Equal(t, domain.ServiceTaxAudit, engine.Normalize("Tax Audit"))
	assert.Equal(t, domain.ServiceStatutoryAudit, engine.Normalize("Statutory Audit"))
}

func TestNormalizeRegistrations(t *testing.T) {
	engine := NewDefaultEngine()

	cases := map[string]domain.CanonicalService{
		"Private Limited Registration":   domain.ServicePrivateLimited,
		"Pvt Ltd incorporation":          domain.ServicePrivateLimited,
		"One Person Company":             domain.ServiceOPC,
		"Sole Proprietorship":            domain.ServiceProprietorship,
		"Startup India Registration":     domain.ServiceStartupIndia,
		"Udyam Registration":             domain.ServiceMSME,
		"FSSAI food license":             domain.ServiceFSSAI,
		"Trademark Registration":         domain.ServiceTrademark,
		"Income Tax Return Filing":       domain.ServiceITRFiling,
		"Income Tax Notice":              domain.ServiceITNotice,
		"TDS Return Filing":              domain.ServiceTDSReturn,
		"Digital Signature Certificate":  domain.ServiceDSC,
		"Registered Office Change":       domain.ServiceRegisteredOffice,
		"Section 8 Company Registration": domain.ServiceSection8,
	}
	for input, want := range cases {
		assert.Equal(t, want, engine.Normalize(input), "input %q", input)
	}
}

func TestNormalizeToleratesCasingAndWhitespace(t *testing.T) {
	engine := NewDefaultEngine()

	assert.Equal(t, domain.ServiceGSTRegistration, engine.Normalize("  gSt ReGiStRaTiOn  "))
}

func TestNormalizeNoSignal(t *testing.T) {
	engine := NewDefaultEngine()

	assert.Empty(t, engine.Normalize(""))
	assert.Empty(t, engine.Normalize("   "))
	assert.Empty(t, engine.Normalize("completely unrelated text"))
}
