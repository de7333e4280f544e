package domain

// CanonicalService is one label from the closed service catalog. Records that
// cannot be attributed to any catalog entry classify as ServiceOther.
type CanonicalService string

// ServiceOther is the sentinel for records with no recognizable service signal.
const ServiceOther CanonicalService = "Other"

// Company and entity registrations.
const (
	ServicePrivateLimited  CanonicalService = "Private Limited Company"
	ServiceLLP             CanonicalService = "Limited Liability Partnership"
	ServiceOPC             CanonicalService = "One Person Company"
	ServicePartnershipFirm CanonicalService = "Partnership Firm"
	ServiceProprietorship  CanonicalService = "Proprietorship"
	ServicePublicLimited   CanonicalService = "Public Limited Company"
	ServiceSection8        CanonicalService = "Section 8 Company"
	ServiceNidhiCompany    CanonicalService = "Nidhi Company"
	ServiceProducerCompany CanonicalService = "Producer Company"
	ServiceIndianSubsidiary CanonicalService = "Indian Subsidiary"
	ServiceStartupIndia    CanonicalService = "Startup India Registration"
	ServiceTrust           CanonicalService = "Trust Registration"
	ServiceSociety         CanonicalService = "Society Registration"
	ServiceNGO             CanonicalService = "NGO Registration"
	ServiceNGODarpan       CanonicalService = "NGO Darpan Registration"
)

// Licenses and statutory registrations.
const (
	ServiceMSME            CanonicalService = "MSME Registration"
	ServiceFSSAI           CanonicalService = "FSSAI Registration"
	ServiceIEC             CanonicalService = "Import Export Code"
	ServiceTrademark       CanonicalService = "Trademark Registration"
	ServiceCopyright       CanonicalService = "Copyright Registration"
	ServicePatent          CanonicalService = "Patent Registration"
	ServiceDSC             CanonicalService = "Digital Signature Certificate"
	ServiceShopAct         CanonicalService = "Shop and Establishment License"
	ServiceProfessionalTax CanonicalService = "Professional Tax Registration"
	ServiceESI             CanonicalService = "ESI Registration"
	ServiceEPF             CanonicalService = "EPF Registration"
	Service12A             CanonicalService = "12A Registration"
	Service80G             CanonicalService = "80G Registration"
	ServiceISO             CanonicalService = "ISO Certification"
	ServicePAN             CanonicalService = "PAN Application"
	ServiceTAN             CanonicalService = "TAN Registration"
	ServiceBarcode         CanonicalService = "Barcode Registration"
)

// GST services. Specific filings are distinct catalog entries from the plain
// registration; the normalizer rule order keeps them apart.
const (
	ServiceGSTRegistration CanonicalService = "GST Registration"
	ServiceGSTReturn       CanonicalService = "GST Return Filing"
	ServiceGSTAnnualReturn CanonicalService = "GST Annual Return Filing"
	ServiceGSTAmendment    CanonicalService = "GST Amendment"
	ServiceGSTNotice       CanonicalService = "GST Notice Reply"
	ServiceGSTCancellation CanonicalService = "GST Cancellation"
	ServiceGSTLUT          CanonicalService = "GST LUT Filing"
	ServiceEWayBill        CanonicalService = "E-Way Bill Registration"
)

// ROC / MCA filings.
const (
	ServiceROCAnnualFiling   CanonicalService = "ROC Annual Filing"
	ServiceLLPAnnualFiling   CanonicalService = "LLP Annual Filing"
	ServiceDINEKYC           CanonicalService = "DIN eKYC"
	ServiceDirectorAppointment CanonicalService = "Director Appointment"
	ServiceDirectorRemoval   CanonicalService = "Director Removal"
	ServiceShareTransfer     CanonicalService = "Share Transfer"
	ServiceRegisteredOffice  CanonicalService = "Registered Office Change"
	ServiceCompanyNameChange CanonicalService = "Company Name Change"
	ServiceMOAAmendment      CanonicalService = "MOA Amendment"
	ServiceCapitalIncrease   CanonicalService = "Authorised Capital Increase"
	ServiceCompanyClosure    CanonicalService = "Company Closure"
	ServiceDormantStatus     CanonicalService = "Dormant Company Status"
)

// Tax and accounting services.
const (
	ServiceITRFiling       CanonicalService = "Income Tax Return Filing"
	ServiceITNotice        CanonicalService = "Income Tax Notice Reply"
	ServiceTDSReturn       CanonicalService = "TDS Return Filing"
	ServiceAdvanceTax      CanonicalService = "Advance Tax Filing"
	ServiceTaxAudit        CanonicalService = "Tax Audit"
	ServiceStatutoryAudit  CanonicalService = "Statutory Audit"
	ServiceAccounting      CanonicalService = "Accounting and Bookkeeping"
	ServicePayroll         CanonicalService = "Payroll Management"
)

// Catalog returns every canonical service name, ServiceOther excluded.
// The slice is a fresh copy; callers may reorder it.
func Catalog() []CanonicalService {
	return []CanonicalService{
		ServicePrivateLimited, ServiceLLP, ServiceOPC, ServicePartnershipFirm,
		ServiceProprietorship, ServicePublicLimited, ServiceSection8,
		ServiceNidhiCompany, ServiceProducerCompany, ServiceIndianSubsidiary,
		ServiceStartupIndia, ServiceTrust, ServiceSociety, ServiceNGO,
		ServiceNGODarpan,
		ServiceMSME, ServiceFSSAI, ServiceIEC, ServiceTrademark,
		ServiceCopyright, ServicePatent, ServiceDSC, ServiceShopAct,
		ServiceProfessionalTax, ServiceESI, ServiceEPF, Service12A,
		Service80G, ServiceISO, ServicePAN, ServiceTAN, ServiceBarcode,
		ServiceGSTRegistration, ServiceGSTReturn, ServiceGSTAnnualReturn,
		ServiceGSTAmendment, ServiceGSTNotice, ServiceGSTCancellation,
		ServiceGSTLUT, ServiceEWayBill,
		ServiceROCAnnualFiling, ServiceLLPAnnualFiling, ServiceDINEKYC,
		ServiceDirectorAppointment, ServiceDirectorRemoval, ServiceShareTransfer,
		ServiceRegisteredOffice, ServiceCompanyNameChange, ServiceMOAAmendment,
		ServiceCapitalIncrease, ServiceCompanyClosure, ServiceDormantStatus,
		ServiceITRFiling, ServiceITNotice, ServiceTDSReturn, ServiceAdvanceTax,
		ServiceTaxAudit, ServiceStatutoryAudit, ServiceAccounting, ServicePayroll,
	}
}
