package models

import (
	"time"

	"github.com/google/uuid"

	dErrors "dealgate/pkg/domain-errors"
)

// Validity windows for time-bounded certifications. Renewal is required
// after expiry; expiry is evaluated lazily at decision time, never by a
// background sweep.
const (
	KYCValidity           = 2 * 365 * 24 * time.Hour
	AccreditationValidity = 365 * 24 * time.Hour
)

// Typed identifiers so the compiler keeps entity references apart.
type (
	InvestorID     = uuid.UUID
	DocumentID     = uuid.UUID
	VerificationID = uuid.UUID
)

// Investor is the aggregate root for one capital-providing party.
//
// Invariants:
//   - Status moves only along allowedTransitions edges; rejected is terminal
//   - KYCExpiresAt is set whenever KYCStatus becomes verified and is
//     strictly after KYCVerifiedAt
//   - RequiresGovernmentApproval is true iff the country of residence
//     classifies as restricted_bordering, recomputed on residence change
//   - At most one active accreditation category; re-certification
//     overwrites the prior category and expiry
//
// Guards (CanX) and mutators (ApplyX) are split so the store's Execute
// callback can validate and mutate under the same record lock.
type Investor struct {
	ID        InvestorID `json:"id"`
	AccountID string     `json:"account_id"`
	LegalName string     `json:"legal_name"`
	Entity    EntityType `json:"entity_type"`

	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ApprovedBy      string     `json:"approved_by,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectedBy      string     `json:"rejected_by,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`

	Email string `json:"email"`
	Phone string `json:"phone"`
	TaxID string `json:"tax_id"`

	Nationality           string                `json:"nationality"`
	CountryOfResidence    string                `json:"country_of_residence"`
	Residency             ResidencyStatus       `json:"residency_status"`
	CountryClassification CountryClassification `json:"country_classification"`

	KYCStatus     KYCStatus  `json:"kyc_status"`
	KYCVerifiedAt *time.Time `json:"kyc_verified_at,omitempty"`
	KYCExpiresAt  *time.Time `json:"kyc_expires_at,omitempty"`

	IsAccredited         bool               `json:"is_accredited_investor"`
	AccreditedCategory   AccreditedCategory `json:"accredited_category,omitempty"`
	AccreditedVerifiedAt *time.Time         `json:"accredited_verified_at,omitempty"`
	AccreditedExpiresAt  *time.Time         `json:"accredited_expires_at,omitempty"`

	PoliticallyExposed         bool `json:"politically_exposed"`
	RelatedToRegulator         bool `json:"related_to_regulator"`
	SanctionsHit               bool `json:"sanctions_hit"`
	RequiresGovernmentApproval bool `json:"requires_government_approval"`
}

// CanTransitionTo checks the lifecycle table for a move to the given
// status. Returns a coded error so Execute callbacks can pass it through
// unchanged.
func (inv *Investor) CanTransitionTo(to Status) error {
	if !to.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "unknown status %q", to)
	}
	if !inv.Status.CanTransitionTo(to) {
		return dErrors.Newf(dErrors.CodeInvalidTransition,
			"cannot transition from %s to %s", inv.Status, to)
	}
	return nil
}

// ApplyStatus moves the lifecycle status, stamping approval fields when the
// target is approved. Call CanTransitionTo first.
func (inv *Investor) ApplyStatus(to Status, actorID string, now time.Time) {
	inv.Status = to
	inv.UpdatedAt = now
	if to == StatusApproved {
		inv.ApprovedAt = &now
		if actorID != "" {
			inv.ApprovedBy = actorID
		}
	}
}

// CanReject checks that the current status has a rejected edge. The check
// reads the table rather than assuming every state can reach rejected.
func (inv *Investor) CanReject(reason string) error {
	if reason == "" {
		return dErrors.New(dErrors.CodeValidation, "rejection reason is required")
	}
	if !inv.Status.CanTransitionTo(StatusRejected) {
		return dErrors.Newf(dErrors.CodeInvalidOperation,
			"cannot reject investor in status %s", inv.Status)
	}
	return nil
}

// ApplyRejection moves to rejected, recording the reason and actor.
func (inv *Investor) ApplyRejection(reason, actorID string, now time.Time) {
	inv.Status = StatusRejected
	inv.RejectionReason = reason
	inv.RejectedBy = actorID
	inv.RejectedAt = &now
	inv.UpdatedAt = now
}

// CanSubmitKYC guards the KYC submission sub-flow. Stricter than the bare
// transition table because it couples lifecycle status with KYCStatus.
func (inv *Investor) CanSubmitKYC() error {
	if inv.Status != StatusKYCPending {
		return dErrors.Newf(dErrors.CodeInvalidOperation,
			"KYC can only be submitted while kyc_pending, current status is %s", inv.Status)
	}
	return nil
}

// ApplySubmitKYC moves both coupled fields together.
func (inv *Investor) ApplySubmitKYC(now time.Time) {
	inv.Status = StatusKYCSubmitted
	inv.KYCStatus = KYCSubmitted
	inv.UpdatedAt = now
}

// CanVerifyKYC guards the reviewer's verification action.
func (inv *Investor) CanVerifyKYC() error {
	if inv.Status != StatusKYCSubmitted {
		return dErrors.Newf(dErrors.CodeInvalidOperation,
			"KYC can only be verified while kyc_submitted, current status is %s", inv.Status)
	}
	return nil
}

// ApplyVerifyKYC records the verification outcome and opens the renewal
// window. KYCExpiresAt is always strictly after KYCVerifiedAt.
func (inv *Investor) ApplyVerifyKYC(now time.Time) {
	expires := now.Add(KYCValidity)
	inv.Status = StatusKYCVerified
	inv.KYCStatus = KYCVerified
	inv.KYCVerifiedAt = &now
	inv.KYCExpiresAt = &expires
	inv.UpdatedAt = now
}

// ApplyAccreditation records a reviewer-certified accreditation. Callable
// from any lifecycle status; re-certification overwrites the prior
// category and expiry.
func (inv *Investor) ApplyAccreditation(category AccreditedCategory, now time.Time) {
	expires := now.Add(AccreditationValidity)
	inv.IsAccredited = true
	inv.AccreditedCategory = category
	inv.AccreditedVerifiedAt = &now
	inv.AccreditedExpiresAt = &expires
	inv.UpdatedAt = now
}

// KYCExpiredAt reports whether the KYC certification has lapsed as of the
// given instant. False when no expiry is set.
func (inv *Investor) KYCExpiredAt(now time.Time) bool {
	return inv.KYCExpiresAt != nil && inv.KYCExpiresAt.Before(now)
}
