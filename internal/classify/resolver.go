package classify

import "strings"

// PrefixRule maps a ticket-ID prefix to the raw service text the ticket was
// created under. The text is fed back through the normalizer before use, so
// targets stay human-readable names rather than catalog constants.
type PrefixRule struct {
	Prefix  string
	Service string
}

// DefaultPrefixRules is the ordered prefix table. First match wins; more
// specific prefixes come first. Several prefixes map to the same service
// because ticket formats changed over time.
func DefaultPrefixRules() []PrefixRule {
	return []PrefixRule{
		{"PVT_", "Private Limited Registration"},
		{"PRIVATE_", "Private Limited Registration"},
		{"OPC_", "One Person Company Registration"},
		{"LLP_", "LLP Registration"},
		{"PARTNERSHIP_", "Partnership Registration"},
		{"PART_", "Partnership Registration"},
		{"PROP_", "Proprietorship Registration"},
		{"SOLE_", "Proprietorship Registration"},
		{"PUB_", "Public Limited Registration"},
		{"SEC8_", "Section 8 Company Registration"},
		{"NIDHI_", "Nidhi Company Registration"},
		{"PROD_", "Producer Company Registration"},
		{"SUB_", "Indian Subsidiary Registration"},
		{"STARTUP_", "Startup India Registration"},
		{"SI_", "Startup India Registration"},
		{"TRUST_", "Trust Registration"},
		{"SOC_", "Society Registration"},
		{"DARPAN_", "NGO Darpan Registration"},
		{"NGO_", "NGO Registration"},
		{"MSME_", "MSME Registration"},
		{"UDYAM_", "MSME Registration"},
		{"FSSAI_", "FSSAI Registration"},
		{"IEC_", "Import Export Code"},
		{"TM_", "Trademark Registration"},
		{"COPY_", "Copyright Registration"},
		{"PAT_", "Patent Registration"},
		{"DSC_", "Digital Signature Certificate"},
		{"SHOP_", "Shop and Establishment License"},
		{"PTAX_", "Professional Tax Registration"},
		{"ESI_", "ESI Registration"},
		{"EPF_", "EPF Registration"},
		{"12A_", "12A Registration"},
		{"80G_", "80G Registration"},
		{"ISO_", "ISO Certification"},
		{"PAN_", "PAN Application"},
		{"TAN_", "TAN Registration"},
		{"BAR_", "Barcode Registration"},
		{"GSTR9_", "GST Annual Return Filing"},
		{"GSTR_", "GST Return Filing"},
		{"GSTAMD_", "GST Amendment"},
		{"GSTNOT_", "GST Notice Reply"},
		{"GSTCAN_", "GST Cancellation"},
		{"LUT_", "GST LUT Filing"},
		{"EWAY_", "E-Way Bill Registration"},
		{"GST_", "GST Registration"},
		{"ROC_", "ROC Annual Filing"},
		{"DIN_", "DIN eKYC"},
		{"ITR_", "Income Tax Return Filing"},
		{"TDS_", "TDS Return Filing"},
		{"ACC_", "Accounting and Bookkeeping"},
		{"PAY_", "Payroll Management"},
	}
}

// ResolveTicket maps a ticket ID to the raw service text its prefix encodes.
// Matching is case-insensitive. Returns "" when the ticket is empty or no
// prefix matches.
func (e *Engine) ResolveTicket(ticketID string) string {
	ticket := strings.ToUpper(strings.TrimSpace(ticketID))
	if ticket == "" {
		return ""
	}
	for _, rule := range e.prefixes {
		if strings.HasPrefix(ticket, rule.Prefix) {
			return rule.Service
		}
	}
	return ""
}
