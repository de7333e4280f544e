package classify

import (
	"strings"

	"github.com/spec-kit/registration-service/internal/domain"
)

// Engine classifies service records against injected rule tables. All methods
// are pure; a single Engine is safe for concurrent use.
type Engine struct {
	prefixes []PrefixRule
	rules    []TextRule
}

// NewEngine builds an engine from explicit rule tables.
func NewEngine(prefixes []PrefixRule, rules []TextRule) *Engine {
	return &Engine{prefixes: prefixes, rules: rules}
}

// NewDefaultEngine builds an engine over the full default rule tables.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultPrefixRules(), DefaultTextRules())
}

// tierNames are package-size labels that carry no service information. A
// package_name equal to one of these is ignored entirely.
var tierNames = map[string]struct{}{
	"starter": {},
	"growth":  {},
	"pro":     {},
	"basic":   {},
}

// mismatchTickets are the ticket-derived services for which a Private-Limited
// package name is known to be stale data entry. The guard is deliberately not
// generalized beyond these: it repairs one observed defect where the package
// field defaulted to Private Limited on Startup-India, GST and Proprietorship
// tickets.
var mismatchTickets = map[domain.CanonicalService]struct{}{
	domain.ServiceStartupIndia:    {},
	domain.ServiceProprietorship:  {},
	domain.ServiceGSTRegistration: {},
	domain.ServiceGSTReturn:       {},
	domain.ServiceGSTAnnualReturn: {},
	domain.ServiceGSTAmendment:    {},
	domain.ServiceGSTNotice:       {},
	domain.ServiceGSTCancellation: {},
	domain.ServiceGSTLUT:          {},
}

// Classify derives the single canonical service for a record. It never
// returns an empty value; records with no usable signal classify as Other.
//
// Signal precedence: the ticket prefix is machine-generated and most
// reliable; the operator-entered package name is least reliable and is
// consulted last, or discarded outright when the tier or mismatch guard
// fires.
func (e *Engine) Classify(rec domain.ServiceRecord) domain.CanonicalService {
	ticketNormalized := e.Normalize(e.ResolveTicket(rec.TicketID))

	fieldsInferred := firstService(
		e.Normalize(rec.ServiceName),
		e.Normalize(rec.RegistrationType),
		e.Normalize(rec.ServiceType),
		ticketNormalized,
		e.Normalize(rec.BusinessName),
	)

	packageName := strings.TrimSpace(rec.PackageName)
	if _, isTier := tierNames[strings.ToLower(packageName)]; isTier {
		return firstService(fieldsInferred, ticketNormalized, domain.ServiceOther)
	}

	if e.packageMismatch(packageName, ticketNormalized) {
		return firstService(ticketNormalized, fieldsInferred, domain.ServiceOther)
	}

	return firstService(fieldsInferred, e.Normalize(packageName), ticketNormalized, domain.ServiceOther)
}

// packageMismatch reports whether a Private-Limited package name collides
// with a ticket that indicates one of the mismatch-prone services.
func (e *Engine) packageMismatch(packageName string, ticketNormalized domain.CanonicalService) bool {
	if packageName == "" || ticketNormalized == "" {
		return false
	}
	if _, prone := mismatchTickets[ticketNormalized]; !prone {
		return false
	}
	if e.Normalize(packageName) == domain.ServicePrivateLimited {
		return true
	}
	return strings.Contains(strings.ToLower(packageName), "private limited")
}

func firstService(candidates ...domain.CanonicalService) domain.CanonicalService {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
