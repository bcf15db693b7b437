//go:build integration

package document_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"dealgate/internal/investor/models"
	"dealgate/internal/investor/store/document"
	investorstore "dealgate/internal/investor/store/investor"
	"dealgate/pkg/platform/sentinel"
	"dealgate/pkg/testutil/containers"
)

type PostgresDocumentSuite struct {
	suite.Suite
	postgres  *containers.PostgresContainer
	store     *document.PostgresStore
	investors *investorstore.PostgresStore
	now       time.Time
}

func TestPostgresDocumentSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresDocumentSuite))
}

func (s *PostgresDocumentSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = document.NewPostgres(s.postgres.DB)
	s.investors = investorstore.NewPostgres(s.postgres.DB)
	s.now = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
}

func (s *PostgresDocumentSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx, "kyc_documents", "accreditation_verifications", "investors")
	s.Require().NoError(err)
}

// documents reference their investor, so each test seeds one.
func (s *PostgresDocumentSuite) seedInvestor() models.InvestorID {
	inv := &models.Investor{
		ID:                    uuid.New(),
		AccountID:             "acct-" + uuid.NewString(),
		LegalName:             "Asha Rao",
		Entity:                models.EntityIndividual,
		Status:                models.StatusKYCPending,
		KYCStatus:             models.KYCNotSubmitted,
		Email:                 "asha@example.com",
		Phone:                 "9876543210",
		TaxID:                 "ABCDE1234F",
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

func (s *PostgresDocumentSuite) newDocument(investorID models.InvestorID, docType models.DocumentType, uploadedAt time.Time) *models.KYCDocument {
	return &models.KYCDocument{
		ID:         uuid.New(),
		InvestorID: investorID,
		Type:       docType,
		FileRef:    "s3://kyc/" + uuid.NewString(),
		Status:     models.DocumentPending,
		UploadedAt: uploadedAt,
	}
}

func (s *PostgresDocumentSuite) TestAppendSupersedesInTx() {
	ctx := context.Background()
	investorID := s.seedInvestor()

	first := s.newDocument(investorID, models.DocPassport, s.now)
	s.Require().NoError(s.store.Append(ctx, first))

	second := s.newDocument(investorID, models.DocPassport, s.now.Add(time.Minute))
	s.Require().NoError(s.store.Append(ctx, second))

	got, err := s.store.FindByID(ctx, first.ID)
	s.Require().NoError(err)
	s.Equal(models.DocumentSuperseded, got.Status)

	got, err = s.store.FindByID(ctx, second.ID)
	s.Require().NoError(err)
	s.Equal(models.DocumentPending, got.Status)
}

func (s *PostgresDocumentSuite) TestReviewRoundTrip() {
	ctx := context.Background()
	investorID := s.seedInvestor()

	doc := s.newDocument(investorID, models.DocAddressProof, s.now)
	s.Require().NoError(s.store.Append(ctx, doc))

	reviewedAt := s.now.Add(time.Hour)
	out, err := s.store.Execute(ctx, doc.ID,
		func(cur *models.KYCDocument) error { return cur.CanReview(models.DocumentRejected, "blurry scan") },
		func(cur *models.KYCDocument) { cur.ApplyReview(models.DocumentRejected, "reviewer-3", "blurry scan", reviewedAt) },
	)
	s.Require().NoError(err)
	s.Equal(models.DocumentRejected, out.Status)

	found, err := s.store.FindByID(ctx, doc.ID)
	s.Require().NoError(err)
	s.Equal("reviewer-3", found.ReviewedBy)
	s.Equal("blurry scan", found.RejectionReason)
	s.Require().NotNil(found.ReviewedAt)
	s.True(found.ReviewedAt.Equal(reviewedAt))
}

func (s *PostgresDocumentSuite) TestListByInvestor() {
	ctx := context.Background()
	investorID := s.seedInvestor()
	other := s.seedInvestor()

	s.Require().NoError(s.store.Append(ctx, s.newDocument(investorID, models.DocPassport, s.now)))
	s.Require().NoError(s.store.Append(ctx, s.newDocument(investorID, models.DocAddressProof, s.now.Add(time.Minute))))
	s.Require().NoError(s.store.Append(ctx, s.newDocument(other, models.DocPassport, s.now)))

	docs, err := s.store.ListByInvestor(ctx, investorID)
	s.Require().NoError(err)
	s.Require().Len(docs, 2)
	s.True(docs[0].UploadedAt.After(docs[1].UploadedAt))

	_, err = s.store.FindByID(ctx, uuid.New())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
