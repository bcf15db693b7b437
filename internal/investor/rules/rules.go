// Package rules holds the fixed regulatory data and format validation the
// compliance engine applies: the bordering-country list, accreditation
// thresholds, and the strict identifier patterns.
//
// Everything here is process-wide immutable configuration, loaded once at
// startup and injected into the service so tests can substitute an
// alternate country list without touching service logic.
package rules

import (
	"regexp"
	"strings"

	"dealgate/internal/investor/models"
)

// Thresholds are the advisory accreditation figures, exposed for display
// and server-side pre-checks. The authoritative accreditation decision is
// always the reviewer-verified flag, never a client-computed comparison.
type Thresholds struct {
	IndividualIncome      int64 `json:"individual_income"`
	IndividualNetWorth    int64 `json:"individual_net_worth"`
	CombinedIncome        int64 `json:"combined_income"`
	CombinedNetWorth      int64 `json:"combined_net_worth"`
	FamilyTrustNetWorth   int64 `json:"family_trust_net_worth"`
	BodyCorporateNetWorth int64 `json:"body_corporate_net_worth"`
}

// Config is the injected rule set.
type Config struct {
	// RestrictedCountries are ISO codes whose residents need government
	// pre-approval before any investment.
	RestrictedCountries []string
	Thresholds          Thresholds
}

// DefaultConfig returns the production rule set. The seven bordering
// countries and the five threshold figures are conformance constants.
func DefaultConfig() Config {
	return Config{
		RestrictedCountries: []string{"CN", "PK", "BD", "MM", "NP", "BT", "AF"},
		Thresholds: Thresholds{
			IndividualIncome:      20_000_000,
			IndividualNetWorth:    75_000_000,
			CombinedIncome:        10_000_000,
			CombinedNetWorth:      50_000_000,
			FamilyTrustNetWorth:   500_000_000,
			BodyCorporateNetWorth: 500_000_000,
		},
	}
}

// Classifier answers country-of-residence questions from an injected
// Config. Case-insensitive on country codes.
type Classifier struct {
	restricted map[string]struct{}
	thresholds Thresholds
}

// NewClassifier builds a Classifier from cfg.
func NewClassifier(cfg Config) *Classifier {
	restricted := make(map[string]struct{}, len(cfg.RestrictedCountries))
	for _, code := range cfg.RestrictedCountries {
		restricted[strings.ToUpper(strings.TrimSpace(code))] = struct{}{}
	}
	return &Classifier{restricted: restricted, thresholds: cfg.Thresholds}
}

// Classify tiers a country code. Watch-list and sanctioned tiers will be
// added here, not at call sites.
func (c *Classifier) Classify(countryCode string) models.CountryClassification {
	if _, ok := c.restricted[strings.ToUpper(strings.TrimSpace(countryCode))]; ok {
		return models.CountryRestrictedBordering
	}
	return models.CountryNonRestricted
}

// RequiresGovernmentApproval is defined as membership in the
// restricted_bordering tier.
func (c *Classifier) RequiresGovernmentApproval(countryCode string) bool {
	return c.Classify(countryCode) == models.CountryRestrictedBordering
}

// Thresholds returns the advisory accreditation figures.
func (c *Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// taxIDPattern is the fixed tax identifier format: 5 letters, 4 digits,
// 1 letter.
var taxIDPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// emailPattern checks the standard local@domain.tld shape; full RFC
// validation is the mail collaborator's problem.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidTaxID reports whether s matches the tax identifier pattern.
// Input is uppercased first; the stored form is always uppercase.
func ValidTaxID(s string) bool {
	return taxIDPattern.MatchString(strings.ToUpper(s))
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// MinPhoneLength is the only phone constraint enforced at this layer.
const MinPhoneLength = 10

// ValidPhone reports whether s meets the minimum length.
func ValidPhone(s string) bool {
	return len(s) >= MinPhoneLength
}

// MinLegalNameLength is the minimum accepted legal name length.
const MinLegalNameLength = 2

// ValidLegalName reports whether s meets the minimum length after
// trimming.
func ValidLegalName(s string) bool {
	return len(strings.TrimSpace(s)) >= MinLegalNameLength
}
