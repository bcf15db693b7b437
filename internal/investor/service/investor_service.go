package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"dealgate/internal/investor/models"
	"dealgate/internal/investor/rules"
	dErrors "dealgate/pkg/domain-errors"
	"dealgate/pkg/platform/audit"
	"dealgate/pkg/requestcontext"
)

// Create validates the application form and persists a new investor in
// status applied. Validation fails before any write and names the
// offending field.
func (s *Service) Create(ctx context.Context, accountID string, input models.CreateInvestorInput) (*models.Investor, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "account_id is required")
	}
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	classification := s.classifier.Classify(input.CountryOfResidence)
	inv := &models.Investor{
		ID:        uuid.New(),
		AccountID: accountID,
		LegalName: strings.TrimSpace(input.LegalName),
		Entity:    input.Entity,

		Status:    models.StatusApplied,
		CreatedAt: now,
		UpdatedAt: now,

		Email: input.Email,
		Phone: input.Phone,
		TaxID: strings.ToUpper(input.TaxID),

		Nationality:           strings.ToUpper(input.Nationality),
		CountryOfResidence:    strings.ToUpper(input.CountryOfResidence),
		Residency:             input.Residency,
		CountryClassification: classification,

		KYCStatus:    models.KYCNotSubmitted,
		IsAccredited: false,

		PoliticallyExposed:         input.PoliticallyExposed,
		RelatedToRegulator:         input.RelatedToRegulator,
		SanctionsHit:               false,
		RequiresGovernmentApproval: classification == models.CountryRestrictedBordering,
	}

	if err := s.investors.CreateIfAccountAvailable(ctx, inv); err != nil {
		return nil, wrapInvestorErr(err)
	}

	s.auditEmitter.emit(ctx, audit.EventInvestorCreated, inv.ID, requestcontext.ActorID(ctx), "", map[string]string{
		"country_classification": string(classification),
	})
	s.incrementInvestorsCreated()
	return inv, nil
}

func validateCreateInput(input models.CreateInvestorInput) error {
	if !rules.ValidLegalName(input.LegalName) {
		return dErrors.New(dErrors.CodeValidation, "legal_name must be at least 2 characters")
	}
	if !rules.ValidEmail(input.Email) {
		return dErrors.New(dErrors.CodeValidation, "email is not a valid address")
	}
	if !rules.ValidPhone(input.Phone) {
		return dErrors.New(dErrors.CodeValidation, "phone must be at least 10 characters")
	}
	if !rules.ValidTaxID(input.TaxID) {
		return dErrors.New(dErrors.CodeValidation, "tax_id must match the pattern 5 letters, 4 digits, 1 letter")
	}
	if strings.TrimSpace(input.CountryOfResidence) == "" {
		return dErrors.New(dErrors.CodeValidation, "country_of_residence is required")
	}
	return nil
}

// GetByID returns one investor or NOT_FOUND.
func (s *Service) GetByID(ctx context.Context, id models.InvestorID) (*models.Investor, error) {
	inv, err := s.investors.FindByID(ctx, id)
	if err != nil {
		return nil, wrapInvestorErr(err)
	}
	return inv, nil
}

// GetByAccountID returns the account's investor profile, or nil when the
// account has none. Absence is a fact, not an error: an account has
// zero-or-one profile.
func (s *Service) GetByAccountID(ctx context.Context, accountID string) (*models.Investor, error) {
	inv, err := s.investors.FindByAccountID(ctx, accountID)
	if err != nil {
		if dErrors.HasCode(wrapInvestorErr(err), dErrors.CodeNotFound) {
			return nil, nil
		}
		return nil, wrapInvestorErr(err)
	}
	return inv, nil
}

// List returns investors matching the filter.
func (s *Service) List(ctx context.Context, filter models.ListFilter) ([]*models.Investor, error) {
	out, err := s.investors.List(ctx, filter, requestcontext.Now(ctx))
	if err != nil {
		return nil, wrapInvestorErr(err)
	}
	return out, nil
}

// UpdateStatus moves the lifecycle status along a table edge. The store's
// Execute holds the record lock across validation and mutation, so a
// racing writer re-validates against post-race state instead of a stale
// read.
func (s *Service) UpdateStatus(ctx context.Context, id models.InvestorID, newStatus models.Status, actorID string) (*models.Investor, error) {
	now := requestcontext.Now(ctx)
	inv, err := s.investors.Execute(ctx, id,
		func(inv *models.Investor) error {
			return inv.CanTransitionTo(newStatus)
		},
		func(inv *models.Investor) {
			inv.ApplyStatus(newStatus, actorID, now)
		},
	)
	if err != nil {
		err = wrapInvestorErr(err)
		if dErrors.HasCode(err, dErrors.CodeInvalidTransition) {
			s.incrementTransitionRejected()
		}
		return nil, err
	}

	s.auditEmitter.emit(ctx, audit.EventStatusChanged, inv.ID, actorID, "", map[string]string{
		"to": string(newStatus),
	})
	s.incrementTransition(newStatus)
	return inv, nil
}

// Reject is transition-table-validated like UpdateStatus but additionally
// requires a non-empty reason and the acting reviewer.
func (s *Service) Reject(ctx context.Context, id models.InvestorID, reason, actorID string) (*models.Investor, error) {
	reason = strings.TrimSpace(reason)
	if actorID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "actor_id is required")
	}

	now := requestcontext.Now(ctx)
	inv, err := s.investors.Execute(ctx, id,
		func(inv *models.Investor) error {
			return inv.CanReject(reason)
		},
		func(inv *models.Investor) {
			inv.ApplyRejection(reason, actorID, now)
		},
	)
	if err != nil {
		err = wrapInvestorErr(err)
		if dErrors.HasCode(err, dErrors.CodeInvalidOperation) {
			s.incrementTransitionRejected()
		}
		return nil, err
	}

	s.auditEmitter.emit(ctx, audit.EventInvestorRejected, inv.ID, actorID, reason, nil)
	s.incrementTransition(models.StatusRejected)
	return inv, nil
}
