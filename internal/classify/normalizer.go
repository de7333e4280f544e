package classify

import (
	"strings"

	"github.com/spec-kit/registration-service/internal/domain"
)

// TextRule matches lower-cased free text against substrings. A rule fires
// when any Match substring is present and no Exclude substring is. Rules are
// evaluated strictly in slice order and the first hit wins, so ordering is
// part of the contract: specific filings must be listed before the generic
// rule that would swallow them.
type TextRule struct {
	Match   []string
	Exclude []string
	Service domain.CanonicalService
}

// DefaultTextRules is the ordered normalization table covering the full
// service catalog. Known ordering constraints:
//
//   - "LLP Annual Filing" and "Limited Liability Partnership" before
//     "Partnership Firm"; the partnership rule additionally excludes llp text.
//   - GST annual-return / amendment / notice / cancellation / return / LUT
//     before the generic GST rule, which excludes their markers outright.
//   - "NGO Darpan" before "NGO", "Tax Audit" before "Statutory Audit".
func DefaultTextRules() []TextRule {
	return []TextRule{
		// Company and entity registrations.
		{Match: []string{"startup india", "start up india", "dpiit"}, Service: domain.ServiceStartupIndia},
		{Match: []string{"private limited", "pvt ltd", "pvt. ltd", "pvt limited"}, Service: domain.ServicePrivateLimited},
		{Match: []string{"one person company", "one-person company", "opc"}, Service: domain.ServiceOPC},
		{Match: []string{"llp annual", "form 11 filing", "form 8 filing"}, Service: domain.ServiceLLPAnnualFiling},
		{Match: []string{"limited liability partnership", "llp"}, Service: domain.ServiceLLP},
		{Match: []string{"partnership"}, Exclude: []string{"llp", "limited liability"}, Service: domain.ServicePartnershipFirm},
		{Match: []string{"proprietorship", "sole proprietor"}, Service: domain.ServiceProprietorship},
		{Match: []string{"public limited"}, Service: domain.ServicePublicLimited},
		{Match: []string{"section 8", "sec 8 company", "sec-8"}, Service: domain.ServiceSection8},
		{Match: []string{"nidhi"}, Service: domain.ServiceNidhiCompany},
		{Match: []string{"producer company"}, Service: domain.ServiceProducerCompany},
		{Match: []string{"subsidiary"}, Service: domain.ServiceIndianSubsidiary},
		{Match: []string{"trust registration", "trust"}, Service: domain.ServiceTrust},
		{Match: []string{"society"}, Service: domain.ServiceSociety},
		{Match: []string{"ngo darpan", "darpan", "niti aayog"}, Service: domain.ServiceNGODarpan},
		{Match: []string{"ngo"}, Service: domain.ServiceNGO},

		// Licenses and statutory registrations.
		{Match: []string{"msme", "udyam", "ssi registration"}, Service: domain.ServiceMSME},
		{Match: []string{"fssai", "food license", "food licence"}, Service: domain.ServiceFSSAI},
		{Match: []string{"import export", "iec"}, Service: domain.ServiceIEC},
		{Match: []string{"trademark"}, Service: domain.ServiceTrademark},
		{Match: []string{"copyright"}, Service: domain.ServiceCopyright},
		{Match: []string{"patent"}, Service: domain.ServicePatent},
		{Match: []string{"digital signature", "dsc"}, Service: domain.ServiceDSC},
		{Match: []string{"shop and establishment", "shops and establishment", "shop act", "gumasta"}, Service: domain.ServiceShopAct},
		{Match: []string{"professional tax", "ptec", "ptrc"}, Service: domain.ServiceProfessionalTax},
		{Match: []string{"esi registration", "employee state insurance", "esic"}, Service: domain.ServiceESI},
		{Match: []string{"epf", "provident fund"}, Service: domain.ServiceEPF},
		{Match: []string{"12a"}, Service: domain.Service12A},
		{Match: []string{"80g"}, Service: domain.Service80G},
		{Match: []string{"iso certification", "iso cert", "iso registration"}, Service: domain.ServiceISO},
		{Match: []string{"pan card", "pan application"}, Service: domain.ServicePAN},
		{Match: []string{"tan registration", "tan application"}, Service: domain.ServiceTAN},
		{Match: []string{"barcode", "bar code"}, Service: domain.ServiceBarcode},

		// GST family. Specific filings first, generic last with exclusions.
		{Match: []string{"gst annual return", "gstr-9", "gstr 9"}, Service: domain.ServiceGSTAnnualReturn},
		{Match: []string{"gst amendment"}, Service: domain.ServiceGSTAmendment},
		{Match: []string{"gst notice"}, Service: domain.ServiceGSTNotice},
		{Match: []string{"gst cancellation", "gst surrender"}, Service: domain.ServiceGSTCancellation},
		{Match: []string{"gst return", "gst monthly return", "gstr"}, Service: domain.ServiceGSTReturn},
		{Match: []string{"lut"}, Service: domain.ServiceGSTLUT},
		{Match: []string{"e-way", "eway"}, Service: domain.ServiceEWayBill},
		{Match: []string{"gst"}, Exclude: []string{"return", "amendment", "notice", "lut"}, Service: domain.ServiceGSTRegistration},

		// ROC / MCA filings.
		{Match: []string{"roc annual", "roc filing", "annual compliance", "aoc-4", "aoc 4", "mgt-7", "mgt 7"}, Service: domain.ServiceROCAnnualFiling},
		{Match: []string{"din ekyc", "din kyc", "dir-3", "dir 3"}, Service: domain.ServiceDINEKYC},
		{Match: []string{"director appointment", "add director", "appointment of director"}, Service: domain.ServiceDirectorAppointment},
		{Match: []string{"director removal", "remove director", "resignation of director"}, Service: domain.ServiceDirectorRemoval},
		{Match: []string{"share transfer"}, Service: domain.ServiceShareTransfer},
		{Match: []string{"registered office", "address change"}, Service: domain.ServiceRegisteredOffice},
		{Match: []string{"name change", "company name"}, Service: domain.ServiceCompanyNameChange},
		{Match: []string{"moa amendment", "object change", "moa"}, Service: domain.ServiceMOAAmendment},
		{Match: []string{"authorised capital", "authorized capital"}, Service: domain.ServiceCapitalIncrease},
		{Match: []string{"strike off", "company closure", "winding up"}, Service: domain.ServiceCompanyClosure},
		{Match: []string{"dormant"}, Service: domain.ServiceDormantStatus},

		// Tax and accounting.
		{Match: []string{"income tax notice", "tax notice"}, Service: domain.ServiceITNotice},
		{Match: []string{"income tax return", "itr"}, Service: domain.ServiceITRFiling},
		{Match: []string{"tds"}, Service: domain.ServiceTDSReturn},
		{Match: []string{"advance tax"}, Service: domain.ServiceAdvanceTax},
		{Match: []string{"tax audit"}, Service: domain.ServiceTaxAudit},
		{Match: []string{"statutory audit", "audit"}, Service: domain.ServiceStatutoryAudit},
		{Match: []string{"accounting", "bookkeeping", "book keeping"}, Service: domain.ServiceAccounting},
		{Match: []string{"payroll"}, Service: domain.ServicePayroll},
	}
}

// Normalize maps arbitrary free text to a canonical service, or "" when no
// rule matches. Input is trimmed and lower-cased; empty input is no signal.
func (e *Engine) Normalize(text string) domain.CanonicalService {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return ""
	}
	for _, rule := range e.rules {
		if rule.matches(lowered) {
			return rule.Service
		}
	}
	return ""
}

func (r TextRule) matches(lowered string) bool {
	hit := false
	for _, m := range r.Match {
		if strings.Contains(lowered, m) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}
	for _, x := range r.Exclude {
		if strings.Contains(lowered, x) {
			return false
		}
	}
	return true
}
