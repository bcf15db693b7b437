package models

// CreateInvestorInput carries the application form fields. Validation
// happens in the service before any write; the offending field is named in
// the error.
type CreateInvestorInput struct {
	LegalName          string          `json:"legal_name"`
	Entity             EntityType      `json:"entity_type"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	TaxID              string          `json:"tax_id"`
	Nationality        string          `json:"nationality"`
	CountryOfResidence string          `json:"country_of_residence"`
	Residency          ResidencyStatus `json:"residency_status"`
	PoliticallyExposed bool            `json:"politically_exposed"`
	RelatedToRegulator bool            `json:"related_to_regulator"`
}

// ListFilter narrows List results. Nil pointer fields mean "any".
type ListFilter struct {
	Status         *Status
	Classification *CountryClassification
	Accredited     *bool
	// KYCExpired selects investors whose KYCExpiresAt is before the
	// request time. The same lazy comparison CheckEligibilityForDeal
	// uses, so the dashboard and the decision agree.
	KYCExpired bool
	Limit      int
	Offset     int
}
