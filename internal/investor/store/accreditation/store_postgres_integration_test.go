//go:build integration

package accreditation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"dealgate/internal/investor/models"
	"dealgate/internal/investor/store/accreditation"
	investorstore "dealgate/internal/investor/store/investor"
	"dealgate/pkg/testutil/containers"
)

type PostgresAccreditationSuite struct {
	suite.Suite
	postgres  *containers.PostgresContainer
	store     *accreditation.PostgresStore
	investors *investorstore.PostgresStore
	now       time.Time
}

func TestPostgresAccreditationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresAccreditationSuite))
}

func (s *PostgresAccreditationSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = accreditation.NewPostgres(s.postgres.DB)
	s.investors = investorstore.NewPostgres(s.postgres.DB)
	s.now = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
}

func (s *PostgresAccreditationSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx, "kyc_documents", "accreditation_verifications", "investors")
	s.Require().NoError(err)
}

func (s *PostgresAccreditationSuite) seedInvestor() models.InvestorID {
	inv := &models.Investor{
		ID:                    uuid.New(),
		AccountID:             "acct-" + uuid.NewString(),
		LegalName:             "Meera Pillai",
		Entity:                models.EntityIndividual,
		Status:                models.StatusApproved,
		KYCStatus:             models.KYCVerified,
		Email:                 "meera@example.com",
		Phone:                 "9123456780",
		TaxID:                 "FGHIJ5678K",
		Nationality:           "IN",
		CountryOfResidence:    "IN",
		Residency:             models.ResidencyResident,
		CountryClassification: models.CountryNonRestricted,
		CreatedAt:             s.now,
		UpdatedAt:             s.now,
	}
	s.Require().NoError(s.investors.CreateIfAccountAvailable(context.Background(), inv))
	return inv.ID
}

func (s *PostgresAccreditationSuite) TestAppendRoundTrip() {
	ctx := context.Background()
	investorID := s.seedInvestor()

	docIDs := []models.DocumentID{uuid.New(), uuid.New()}
	rec := &models.AccreditationVerification{
		ID:                  uuid.New(),
		InvestorID:          investorID,
		Category:            models.AccreditedIndividualIncome,
		DeclaredIncome:      30_000_000,
		SupportingDocuments: docIDs,
		Verified:            true,
		VerifiedBy:          "reviewer-7",
		VerifiedAt:          s.now,
		ExpiresAt:           s.now.AddDate(1, 0, 0),
	}
	s.Require().NoError(s.store.Append(ctx, rec))

	history, err := s.store.ListByInvestor(ctx, investorID)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	got := history[0]
	s.Equal(models.AccreditedIndividualIncome, got.Category)
	s.Equal(int64(30_000_000), got.DeclaredIncome)
	s.Equal(docIDs, got.SupportingDocuments)
	s.Equal("reviewer-7", got.VerifiedBy)
	s.True(got.VerifiedAt.Equal(s.now))
	s.True(got.ExpiresAt.Equal(s.now.AddDate(1, 0, 0)))
}

func (s *PostgresAccreditationSuite) TestHistoryNewestFirstAndScoped() {
	ctx := context.Background()
	investorID := s.seedInvestor()
	other := s.seedInvestor()

	for i, verifiedAt := range []time.Time{s.now, s.now.Add(time.Hour)} {
		rec := &models.AccreditationVerification{
			ID:         uuid.New(),
			InvestorID: investorID,
			Category:   models.AccreditedIndividualNetWorth,
			Verified:   i == 1,
			VerifiedAt: verifiedAt,
			ExpiresAt:  verifiedAt.AddDate(1, 0, 0),
		}
		s.Require().NoError(s.store.Append(ctx, rec))
	}
	s.Require().NoError(s.store.Append(ctx, &models.AccreditationVerification{
		ID:         uuid.New(),
		InvestorID: other,
		Category:   models.AccreditedFamilyTrust,
		VerifiedAt: s.now,
		ExpiresAt:  s.now.AddDate(1, 0, 0),
	}))

	history, err := s.store.ListByInvestor(ctx, investorID)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.True(history[0].VerifiedAt.After(history[1].VerifiedAt))
	s.True(history[0].Verified)
	s.Empty(history[0].SupportingDocuments)
}
