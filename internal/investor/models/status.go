package models

// Status is the single authoritative lifecycle field describing where an
// investor sits in the applied→active pipeline. Distinct from the parallel
// KYCStatus and accreditation flags.
type Status string

const (
	StatusApplied      Status = "applied"
	StatusUnderReview  Status = "under_review"
	StatusKYCPending   Status = "kyc_pending"
	StatusKYCSubmitted Status = "kyc_submitted"
	StatusKYCVerified  Status = "kyc_verified"
	StatusApproved     Status = "approved"
	StatusActive       Status = "active"
	StatusSuspended    Status = "suspended"
	StatusRejected     Status = "rejected"
)

// allowedTransitions defines the legal lifecycle moves. The key is the
// current status; the value is the set of statuses it may move to.
// rejected is terminal and deliberately has no entry.
var allowedTransitions = map[Status][]Status{
	StatusApplied:      {StatusUnderReview, StatusRejected},
	StatusUnderReview:  {StatusKYCPending, StatusRejected},
	StatusKYCPending:   {StatusKYCSubmitted},
	StatusKYCSubmitted: {StatusKYCVerified, StatusKYCPending},
	StatusKYCVerified:  {StatusApproved, StatusKYCPending},
	StatusApproved:     {StatusActive, StatusSuspended},
	StatusActive:       {StatusSuspended},
	StatusSuspended:    {StatusActive, StatusApproved},
}

// CanTransitionTo reports whether moving to the given status is legal.
// Pure and total: unknown or terminal statuses simply return false.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsValid reports whether s is one of the nine lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusApplied, StatusUnderReview, StatusKYCPending, StatusKYCSubmitted,
		StatusKYCVerified, StatusApproved, StatusActive, StatusSuspended, StatusRejected:
		return true
	}
	return false
}

// KYCStatus tracks the identity-verification sub-flow. It moves in
// lockstep with the lifecycle status for the kyc_* states; the joint
// preconditions live on Investor, never at call sites.
type KYCStatus string

const (
	KYCNotSubmitted KYCStatus = "not_submitted"
	KYCSubmitted    KYCStatus = "submitted"
	KYCUnderReview  KYCStatus = "under_review"
	KYCVerified     KYCStatus = "verified"
	KYCRejected     KYCStatus = "rejected"
	KYCExpired      KYCStatus = "expired"
)

// EntityType classifies the legal form of the investing party.
type EntityType string

const (
	EntityIndividual               EntityType = "individual"
	EntityTrust                    EntityType = "trust"
	EntityCompany                  EntityType = "company"
	EntityPartnership              EntityType = "partnership"
	EntityFund                     EntityType = "fund"
	EntityForeignPortfolioInvestor EntityType = "foreign_portfolio_investor"
)

// ResidencyStatus is derived from declared nationality and country of
// residence.
type ResidencyStatus string

const (
	ResidencyResident           ResidencyStatus = "resident"
	ResidencyNonResidentCitizen ResidencyStatus = "non_resident_citizen"
	ResidencyOverseasCitizen    ResidencyStatus = "overseas_citizen"
	ResidencyForeignNational    ResidencyStatus = "foreign_national"
	ResidencyForeignEntity      ResidencyStatus = "foreign_entity"
)

// CountryClassification tiers the country of residence for regulatory
// gating. Only the first two tiers are populated today; watch_list and
// sanctioned exist so the classifier can grow without new call sites.
type CountryClassification string

const (
	CountryNonRestricted       CountryClassification = "non_restricted"
	CountryRestrictedBordering CountryClassification = "restricted_bordering"
	CountryWatchList           CountryClassification = "watch_list"
	CountrySanctioned          CountryClassification = "sanctioned"
)

// AccreditedCategory names the route under which accreditation was
// certified.
type AccreditedCategory string

const (
	AccreditedIndividualIncome   AccreditedCategory = "individual_income"
	AccreditedIndividualNetWorth AccreditedCategory = "individual_net_worth"
	AccreditedCombined           AccreditedCategory = "combined_income_net_worth"
	AccreditedFamilyTrust        AccreditedCategory = "family_trust"
	AccreditedBodyCorporate      AccreditedCategory = "body_corporate"
)
