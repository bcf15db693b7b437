package accreditation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"dealgate/internal/investor/models"
)

type AccreditationStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
	now   time.Time
}

func (s *AccreditationStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
}

func TestAccreditationStoreSuite(t *testing.T) {
	suite.Run(t, new(AccreditationStoreSuite))
}

func (s *AccreditationStoreSuite) newRecord(investorID models.InvestorID, verifiedAt time.Time) *models.AccreditationVerification {
	return &models.AccreditationVerification{
		ID:         uuid.New(),
		InvestorID: investorID,
		Category:   models.AccreditedIndividualIncome,
		Verified:   true,
		VerifiedBy: "reviewer-1",
		VerifiedAt: verifiedAt,
		ExpiresAt:  verifiedAt.Add(365 * 24 * time.Hour),
	}
}

func (s *AccreditationStoreSuite) TestAppendAndList() {
	investorID := uuid.New()

	s.Run("empty history", func() {
		recs, err := s.store.ListByInvestor(s.ctx, investorID)
		s.Require().NoError(err)
		s.Empty(recs)
	})

	s.Run("history is newest first", func() {
		older := s.newRecord(investorID, s.now.Add(-30*24*time.Hour))
		newer := s.newRecord(investorID, s.now)
		s.Require().NoError(s.store.Append(s.ctx, older))
		s.Require().NoError(s.store.Append(s.ctx, newer))

		recs, err := s.store.ListByInvestor(s.ctx, investorID)
		s.Require().NoError(err)
		s.Require().Len(recs, 2)
		s.Equal(newer.ID, recs[0].ID)
		s.Equal(older.ID, recs[1].ID)
	})

	s.Run("scoped to the investor", func() {
		other := uuid.New()
		s.Require().NoError(s.store.Append(s.ctx, s.newRecord(other, s.now)))

		recs, err := s.store.ListByInvestor(s.ctx, other)
		s.Require().NoError(err)
		s.Len(recs, 1)
	})

	s.Run("caller mutation does not leak into the store", func() {
		investorID := uuid.New()
		s.Require().NoError(s.store.Append(s.ctx, s.newRecord(investorID, s.now)))

		recs, err := s.store.ListByInvestor(s.ctx, investorID)
		s.Require().NoError(err)
		recs[0].VerifiedBy = "tampered"

		again, err := s.store.ListByInvestor(s.ctx, investorID)
		s.Require().NoError(err)
		s.Equal("reviewer-1", again[0].VerifiedBy)
	})
}
