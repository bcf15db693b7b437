package service

import (
	"context"

	"github.com/google/uuid"

	"dealgate/internal/investor/models"
	dErrors "dealgate/pkg/domain-errors"
	"dealgate/pkg/platform/audit"
	"dealgate/pkg/requestcontext"
)

// VerifyAccreditationInput carries a reviewer-certified accreditation
// assessment. Declared figures and supporting documents are advisory
// context for the record; the verdict itself is the reviewer's.
type VerifyAccreditationInput struct {
	Category            models.AccreditedCategory `json:"category"`
	ReviewerID          string                    `json:"reviewer_id"`
	DeclaredIncome      int64                     `json:"declared_income,omitempty"`
	DeclaredNetWorth    int64                     `json:"declared_net_worth,omitempty"`
	SupportingDocuments []models.DocumentID       `json:"supporting_documents,omitempty"`
}

// VerifyAccreditedStatus records a successful accreditation assessment and
// flips the aggregate flag for one year. Deliberately independent of
// lifecycle status: an active investor re-certifies without leaving
// active, and the upstream behavior of allowing it from any status is
// preserved as-is.
func (s *Service) VerifyAccreditedStatus(ctx context.Context, id models.InvestorID, input VerifyAccreditationInput) (*models.Investor, error) {
	if input.ReviewerID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "reviewer_id is required")
	}
	switch input.Category {
	case models.AccreditedIndividualIncome, models.AccreditedIndividualNetWorth,
		models.AccreditedCombined, models.AccreditedFamilyTrust, models.AccreditedBodyCorporate:
	default:
		return nil, dErrors.Newf(dErrors.CodeValidation, "unknown accreditation category %q", input.Category)
	}

	now := requestcontext.Now(ctx)
	inv, err := s.investors.Execute(ctx, id,
		func(*models.Investor) error { return nil },
		func(inv *models.Investor) {
			inv.ApplyAccreditation(input.Category, now)
		},
	)
	if err != nil {
		return nil, wrapInvestorErr(err)
	}

	rec := &models.AccreditationVerification{
		ID:                  uuid.New(),
		InvestorID:          id,
		Category:            input.Category,
		DeclaredIncome:      input.DeclaredIncome,
		DeclaredNetWorth:    input.DeclaredNetWorth,
		SupportingDocuments: input.SupportingDocuments,
		Verified:            true,
		VerifiedBy:          input.ReviewerID,
		VerifiedAt:          now,
		ExpiresAt:           now.Add(models.AccreditationValidity),
	}
	if err := s.accreditations.Append(ctx, rec); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeFetchFailed, "accreditation storage unavailable")
	}

	s.auditEmitter.emit(ctx, audit.EventAccreditationVerified, id, input.ReviewerID, "", map[string]string{
		"category": string(input.Category),
	})
	return inv, nil
}

// GetAccreditationHistory returns every assessment on record, newest
// first. Only the most recent verified record is authoritative for the
// IsAccredited flag.
func (s *Service) GetAccreditationHistory(ctx context.Context, investorID models.InvestorID) ([]*models.AccreditationVerification, error) {
	if _, err := s.investors.FindByID(ctx, investorID); err != nil {
		return nil, wrapInvestorErr(err)
	}
	recs, err := s.accreditations.ListByInvestor(ctx, investorID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeFetchFailed, "accreditation storage unavailable")
	}
	return recs, nil
}
