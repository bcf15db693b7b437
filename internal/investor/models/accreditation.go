package models

import "time"

// AccreditationVerification records one accreditation assessment. An
// investor accumulates a history of these; only the most recent verified
// record is authoritative for the IsAccredited flag on the aggregate.
type AccreditationVerification struct {
	ID         VerificationID     `json:"id"`
	InvestorID InvestorID         `json:"investor_id"`
	Category   AccreditedCategory `json:"category"`
	// Declared figures for the relevant lookback period. Advisory inputs
	// to the reviewer; never a self-service gate.
	DeclaredIncome   int64 `json:"declared_income,omitempty"`
	DeclaredNetWorth int64 `json:"declared_net_worth,omitempty"`
	// SupportingDocuments links KYC document IDs backing the claim.
	SupportingDocuments []DocumentID `json:"supporting_documents,omitempty"`
	Verified            bool         `json:"verified"`
	VerifiedBy          string       `json:"verified_by,omitempty"`
	VerifiedAt          time.Time    `json:"verified_at"`
	ExpiresAt           time.Time    `json:"expires_at"`
}
