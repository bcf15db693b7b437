package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEligibilityFor(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	t.Run("non-investable statuses map to specific reasons", func(t *testing.T) {
		cases := []struct {
			status Status
			reason string
		}{
			{StatusApplied, ReasonStatusBlocks},
			{StatusUnderReview, ReasonUnderReview},
			{StatusKYCPending, ReasonKYCPending},
			{StatusKYCSubmitted, ReasonKYCPending},
			{StatusKYCVerified, ReasonKYCPending},
			{StatusSuspended, ReasonSuspended},
			{StatusRejected, ReasonRejected},
		}
		for _, tc := range cases {
			inv := testInvestor(tc.status)
			result := EligibilityFor(inv, now)
			assert.False(t, result.Eligible, "%s", tc.status)
			assert.Equal(t, tc.reason, result.Reason, "%s", tc.status)
			assert.False(t, result.RequiresApproval, "%s", tc.status)
		}
	})

	t.Run("approved investor is eligible", func(t *testing.T) {
		inv := testInvestor(StatusApproved)
		result := EligibilityFor(inv, now)
		assert.True(t, result.Eligible)
		assert.Empty(t, result.Reason)
		assert.False(t, result.RequiresApproval)
	})

	t.Run("active investor is eligible", func(t *testing.T) {
		inv := testInvestor(StatusActive)
		result := EligibilityFor(inv, now)
		assert.True(t, result.Eligible)
	})

	t.Run("restricted bordering residency flags government approval", func(t *testing.T) {
		inv := testInvestor(StatusApproved)
		inv.RequiresGovernmentApproval = true
		result := EligibilityFor(inv, now)
		assert.True(t, result.Eligible)
		assert.True(t, result.RequiresApproval)
		assert.Equal(t, ApprovalGovernment, result.ApprovalType)
	})

	t.Run("expired KYC blocks with renewal reason", func(t *testing.T) {
		inv := testInvestor(StatusApproved)
		expired := now.Add(-time.Hour)
		inv.KYCExpiresAt = &expired
		result := EligibilityFor(inv, now)
		assert.False(t, result.Eligible)
		assert.Equal(t, ReasonKYCExpired, result.Reason)
	})

	t.Run("government approval gate precedes KYC expiry check", func(t *testing.T) {
		inv := testInvestor(StatusApproved)
		inv.RequiresGovernmentApproval = true
		expired := now.Add(-time.Hour)
		inv.KYCExpiresAt = &expired
		result := EligibilityFor(inv, now)
		assert.True(t, result.Eligible)
		assert.True(t, result.RequiresApproval)
	})

	t.Run("suspension overrides government approval flag", func(t *testing.T) {
		inv := testInvestor(StatusSuspended)
		inv.RequiresGovernmentApproval = true
		result := EligibilityFor(inv, now)
		assert.False(t, result.Eligible)
		assert.Equal(t, ReasonSuspended, result.Reason)
		assert.False(t, result.RequiresApproval)
	})
}
