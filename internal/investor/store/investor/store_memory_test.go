package investor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"dealgate/internal/investor/models"
	"dealgate/pkg/platform/sentinel"
)

type InvestorStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
	now   time.Time
}

func (s *InvestorStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
}

func TestInvestorStoreSuite(t *testing.T) {
	suite.Run(t, new(InvestorStoreSuite))
}

func (s *InvestorStoreSuite) newInvestor(accountID string) *models.Investor {
	return &models.Investor{
		ID:        uuid.New(),
		AccountID: accountID,
		LegalName: "Asha Rao",
		Entity:    models.EntityIndividual,
		Status:    models.StatusApplied,
		KYCStatus: models.KYCNotSubmitted,
		CreatedAt: s.now,
		UpdatedAt: s.now,
	}
}

// TestCreationAndLookups verifies create and both lookup paths.
func (s *InvestorStoreSuite) TestCreationAndLookups() {
	s.Run("creates and finds by id", func() {
		inv := s.newInvestor("acct-1")
		s.Require().NoError(s.store.CreateIfAccountAvailable(s.ctx, inv))

		found, err := s.store.FindByID(s.ctx, inv.ID)
		s.Require().NoError(err)
		s.Equal(inv.AccountID, found.AccountID)
	})

	s.Run("finds by account id", func() {
		found, err := s.store.FindByAccountID(s.ctx, "acct-1")
		s.Require().NoError(err)
		s.Equal("acct-1", found.AccountID)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.FindByID(s.ctx, uuid.New())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returns ErrNotFound for unknown account", func() {
		_, err := s.store.FindByAccountID(s.ctx, "acct-unknown")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

// TestAccountUniqueness verifies one profile per account.
func (s *InvestorStoreSuite) TestAccountUniqueness() {
	s.Run("rejects duplicate account", func() {
		s.Require().NoError(s.store.CreateIfAccountAvailable(s.ctx, s.newInvestor("acct-dup")))
		err := s.store.CreateIfAccountAvailable(s.ctx, s.newInvestor("acct-dup"))
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("concurrent creates yield exactly one success", func() {
		const goroutines = 50
		var wg sync.WaitGroup
		var successes, conflicts atomic.Int32

		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := s.store.CreateIfAccountAvailable(s.ctx, s.newInvestor("acct-race"))
				switch {
				case err == nil:
					successes.Add(1)
				case errors.Is(err, sentinel.ErrConflict):
					conflicts.Add(1)
				}
			}()
		}
		wg.Wait()

		s.Equal(int32(1), successes.Load())
		s.Equal(int32(goroutines-1), conflicts.Load())
	})
}

// TestExecute verifies the validate+mutate contract.
func (s *InvestorStoreSuite) TestExecute() {
	s.Run("validate error leaves the record untouched", func() {
		inv := s.newInvestor("acct-exec-1")
		s.Require().NoError(s.store.CreateIfAccountAvailable(s.ctx, inv))

		_, err := s.store.Execute(s.ctx, inv.ID,
			func(*models.Investor) error { return sentinel.ErrInvalidState },
			func(cur *models.Investor) { cur.Status = models.StatusActive },
		)
		s.Require().ErrorIs(err, sentinel.ErrInvalidState)

		got, err := s.store.FindByID(s.ctx, inv.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusApplied, got.Status)
	})

	s.Run("mutation persists and the returned copy reflects it", func() {
		inv := s.newInvestor("acct-exec-2")
		s.Require().NoError(s.store.CreateIfAccountAvailable(s.ctx, inv))

		out, err := s.store.Execute(s.ctx, inv.ID,
			func(*models.Investor) error { return nil },
			func(cur *models.Investor) { cur.Status = models.StatusUnderReview },
		)
		s.Require().NoError(err)
		s.Equal(models.StatusUnderReview, out.Status)

		got, err := s.store.FindByID(s.ctx, inv.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusUnderReview, got.Status)
	})

	s.Run("unknown id", func() {
		_, err := s.store.Execute(s.ctx, uuid.New(),
			func(*models.Investor) error { return nil },
			func(*models.Investor) {},
		)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("concurrent guarded transitions serialize", func() {
		inv := s.newInvestor("acct-exec-3")
		s.Require().NoError(s.store.CreateIfAccountAvailable(s.ctx, inv))

		// Many writers race to take the same applied->under_review edge.
		// The guard re-runs under the lock, so exactly one wins.
		const goroutines = 25
		var wg sync.WaitGroup
		var successes atomic.Int32

		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.store.Execute(s.ctx, inv.ID,
					func(cur *models.Investor) error {
						if cur.Status != models.StatusApplied {
							return sentinel.ErrInvalidState
						}
						return nil
					},
					func(cur *models.Investor) { cur.Status = models.StatusUnderReview },
				)
				if err == nil {
					successes.Add(1)
				}
			}()
		}
		wg.Wait()

		s.Equal(int32(1), successes.Load())
	})

	s.Run("returned copies do not alias the stored record", func() {
		inv := s.newInvestor("acct-exec-4")
		s.Require().NoError(s.store.CreateIfAccountAvailable(s.ctx, inv))

		got, err := s.store.FindByID(s.ctx, inv.ID)
		s.Require().NoError(err)
		got.Status = models.StatusRejected

		again, err := s.store.FindByID(s.ctx, inv.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusApplied, again.Status)
	})
}

// TestList verifies filters, ordering and pagination.
func (s *InvestorStoreSuite) TestList() {
	approved := s.newInvestor("acct-list-1")
	approved.Status = models.StatusApproved
	expires := s.now.Add(-time.Hour)
	approved.KYCExpiresAt = &expires

	restricted := s.newInvestor("acct-list-2")
	restricted.CountryClassification = models.CountryRestrictedBordering
	restricted.CreatedAt = s.now.Add(time.Minute)

	accredited := s.newInvestor("acct-list-3")
	accredited.IsAccredited = true
	accredited.CreatedAt = s.now.Add(2 * time.Minute)

	for _, inv := range []*models.Investor{approved, restricted, accredited} {
		s.Require().NoError(s.store.CreateIfAccountAvailable(s.ctx, inv))
	}

	s.Run("no filter returns all, newest first", func() {
		out, err := s.store.List(s.ctx, models.ListFilter{}, s.now)
		s.Require().NoError(err)
		s.Require().Len(out, 3)
		s.Equal(accredited.ID, out[0].ID)
		s.Equal(restricted.ID, out[1].ID)
		s.Equal(approved.ID, out[2].ID)
	})

	s.Run("status filter", func() {
		status := models.StatusApproved
		out, err := s.store.List(s.ctx, models.ListFilter{Status: &status}, s.now)
		s.Require().NoError(err)
		s.Require().Len(out, 1)
		s.Equal(approved.ID, out[0].ID)
	})

	s.Run("classification filter", func() {
		classification := models.CountryRestrictedBordering
		out, err := s.store.List(s.ctx, models.ListFilter{Classification: &classification}, s.now)
		s.Require().NoError(err)
		s.Require().Len(out, 1)
		s.Equal(restricted.ID, out[0].ID)
	})

	s.Run("accredited filter", func() {
		yes := true
		out, err := s.store.List(s.ctx, models.ListFilter{Accredited: &yes}, s.now)
		s.Require().NoError(err)
		s.Require().Len(out, 1)
		s.Equal(accredited.ID, out[0].ID)
	})

	s.Run("kyc expired filter compares against the passed clock", func() {
		out, err := s.store.List(s.ctx, models.ListFilter{KYCExpired: true}, s.now)
		s.Require().NoError(err)
		s.Require().Len(out, 1)
		s.Equal(approved.ID, out[0].ID)

		out, err = s.store.List(s.ctx, models.ListFilter{KYCExpired: true}, s.now.Add(-2*time.Hour))
		s.Require().NoError(err)
		s.Empty(out)
	})

	s.Run("offset and limit", func() {
		out, err := s.store.List(s.ctx, models.ListFilter{Offset: 1, Limit: 1}, s.now)
		s.Require().NoError(err)
		s.Require().Len(out, 1)
		s.Equal(restricted.ID, out[0].ID)
	})

	s.Run("offset past the end", func() {
		out, err := s.store.List(s.ctx, models.ListFilter{Offset: 10}, s.now)
		s.Require().NoError(err)
		s.Empty(out)
	})
}
