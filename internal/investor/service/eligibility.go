package service

import (
	"context"
	"time"

	"dealgate/internal/investor/models"
	"dealgate/pkg/requestcontext"
)

// CheckEligibilityForDeal decides whether this investor may commit to a
// deal right now. Pure read: it never mutates state, and expiry is
// evaluated lazily against the request time rather than by a background
// sweep. The deal-commitment flow calls this on its critical path.
func (s *Service) CheckEligibilityForDeal(ctx context.Context, id models.InvestorID) (models.EligibilityResult, error) {
	start := time.Now()

	inv, err := s.investors.FindByID(ctx, id)
	if err != nil {
		return models.EligibilityResult{}, wrapInvestorErr(err)
	}

	result := models.EligibilityFor(inv, requestcontext.Now(ctx))

	if s.metrics != nil {
		outcome := "ineligible"
		switch {
		case result.Eligible && result.RequiresApproval:
			outcome = "eligible_requires_approval"
		case result.Eligible:
			outcome = "eligible"
		}
		s.metrics.IncrementEligibilityCheck(outcome)
		s.metrics.ObserveEligibilityCheck(start)
	}
	return result, nil
}
