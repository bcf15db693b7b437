package models

import "time"

// ApprovalType names a separate approval workflow an otherwise-eligible
// investor must clear before committing.
type ApprovalType string

// ApprovalGovernment gates investors resident in restricted bordering
// countries behind a government pre-approval record (tracked outside this
// engine).
const ApprovalGovernment ApprovalType = "government"

// Ineligibility reasons, keyed by the specific current status so review
// dashboards show something actionable instead of a generic bucket.
const (
	ReasonUnderReview  = "application under review"
	ReasonKYCPending   = "KYC verification pending"
	ReasonSuspended    = "account suspended"
	ReasonRejected     = "application rejected"
	ReasonKYCExpired   = "KYC expired, renewal required"
	ReasonStatusBlocks = "status does not permit investing"
)

// EligibilityResult is the outcome of the deal-commitment eligibility
// check. Pure read: computing it never mutates stored state.
type EligibilityResult struct {
	Eligible bool   `json:"is_eligible"`
	Reason   string `json:"reason,omitempty"`
	// RequiresApproval flags eligible investors who must still clear a
	// separate approval workflow before money moves.
	RequiresApproval bool         `json:"requires_approval,omitempty"`
	ApprovalType     ApprovalType `json:"approval_type,omitempty"`
}

// EligibilityFor runs the decision algorithm against a snapshot of the
// investor at the given instant. Order is a deliberate policy choice:
// lifecycle gating first, then country-approval gating, then KYC expiry
// last so an expired-but-otherwise-eligible investor gets an actionable
// message instead of a generic "not approved".
func EligibilityFor(inv *Investor, now time.Time) EligibilityResult {
	if inv.Status != StatusApproved && inv.Status != StatusActive {
		return EligibilityResult{Eligible: false, Reason: ineligibilityReason(inv.Status)}
	}
	if inv.RequiresGovernmentApproval {
		return EligibilityResult{
			Eligible:         true,
			RequiresApproval: true,
			ApprovalType:     ApprovalGovernment,
		}
	}
	if inv.KYCExpiredAt(now) {
		return EligibilityResult{Eligible: false, Reason: ReasonKYCExpired}
	}
	return EligibilityResult{Eligible: true}
}

func ineligibilityReason(s Status) string {
	switch s {
	case StatusUnderReview:
		return ReasonUnderReview
	case StatusKYCPending, StatusKYCSubmitted, StatusKYCVerified:
		return ReasonKYCPending
	case StatusSuspended:
		return ReasonSuspended
	case StatusRejected:
		return ReasonRejected
	default:
		return ReasonStatusBlocks
	}
}
