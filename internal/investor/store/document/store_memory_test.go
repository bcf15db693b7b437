package document

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"dealgate/internal/investor/models"
	"dealgate/pkg/platform/sentinel"
)

type DocumentStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
	now   time.Time
}

func (s *DocumentStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
}

func TestDocumentStoreSuite(t *testing.T) {
	suite.Run(t, new(DocumentStoreSuite))
}

func (s *DocumentStoreSuite) newDocument(investorID models.InvestorID, docType models.DocumentType, uploadedAt time.Time) *models.KYCDocument {
	return &models.KYCDocument{
		ID:         uuid.New(),
		InvestorID: investorID,
		Type:       docType,
		FileRef:    "s3://kyc/" + uuid.NewString(),
		Status:     models.DocumentPending,
		UploadedAt: uploadedAt,
	}
}

func (s *DocumentStoreSuite) TestAppendAndLookups() {
	investorID := uuid.New()

	s.Run("append and find", func() {
		doc := s.newDocument(investorID, models.DocPassport, s.now)
		s.Require().NoError(s.store.Append(s.ctx, doc))

		found, err := s.store.FindByID(s.ctx, doc.ID)
		s.Require().NoError(err)
		s.Equal(doc.FileRef, found.FileRef)
	})

	s.Run("unknown id", func() {
		_, err := s.store.FindByID(s.ctx, uuid.New())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("list is newest first and scoped to the investor", func() {
		older := s.newDocument(investorID, models.DocAddressProof, s.now.Add(-time.Hour))
		s.Require().NoError(s.store.Append(s.ctx, older))
		s.Require().NoError(s.store.Append(s.ctx, s.newDocument(uuid.New(), models.DocPassport, s.now)))

		docs, err := s.store.ListByInvestor(s.ctx, investorID)
		s.Require().NoError(err)
		s.Require().Len(docs, 2)
		s.True(docs[0].UploadedAt.After(docs[1].UploadedAt))
	})
}

func (s *DocumentStoreSuite) TestAppendSupersedes() {
	investorID := uuid.New()

	first := s.newDocument(investorID, models.DocPassport, s.now)
	s.Require().NoError(s.store.Append(s.ctx, first))

	s.Run("same type pending document is superseded", func() {
		second := s.newDocument(investorID, models.DocPassport, s.now.Add(time.Minute))
		s.Require().NoError(s.store.Append(s.ctx, second))

		got, err := s.store.FindByID(s.ctx, first.ID)
		s.Require().NoError(err)
		s.Equal(models.DocumentSuperseded, got.Status)

		got, err = s.store.FindByID(s.ctx, second.ID)
		s.Require().NoError(err)
		s.Equal(models.DocumentPending, got.Status)
	})

	s.Run("different type is untouched", func() {
		address := s.newDocument(investorID, models.DocAddressProof, s.now)
		s.Require().NoError(s.store.Append(s.ctx, address))
		s.Require().NoError(s.store.Append(s.ctx, s.newDocument(investorID, models.DocPassport, s.now.Add(2*time.Minute))))

		got, err := s.store.FindByID(s.ctx, address.ID)
		s.Require().NoError(err)
		s.Equal(models.DocumentPending, got.Status)
	})

	s.Run("settled documents are never superseded", func() {
		reviewed := s.newDocument(investorID, models.DocBankStatement, s.now)
		reviewed.Status = models.DocumentVerified
		s.Require().NoError(s.store.Append(s.ctx, reviewed))
		s.Require().NoError(s.store.Append(s.ctx, s.newDocument(investorID, models.DocBankStatement, s.now.Add(time.Minute))))

		got, err := s.store.FindByID(s.ctx, reviewed.ID)
		s.Require().NoError(err)
		s.Equal(models.DocumentVerified, got.Status)
	})
}

func (s *DocumentStoreSuite) TestExecute() {
	investorID := uuid.New()

	s.Run("validate error leaves the record untouched", func() {
		doc := s.newDocument(investorID, models.DocPassport, s.now)
		s.Require().NoError(s.store.Append(s.ctx, doc))

		_, err := s.store.Execute(s.ctx, doc.ID,
			func(*models.KYCDocument) error { return sentinel.ErrInvalidState },
			func(cur *models.KYCDocument) { cur.Status = models.DocumentVerified },
		)
		s.Require().ErrorIs(err, sentinel.ErrInvalidState)

		got, err := s.store.FindByID(s.ctx, doc.ID)
		s.Require().NoError(err)
		s.Equal(models.DocumentPending, got.Status)
	})

	s.Run("mutation persists", func() {
		doc := s.newDocument(investorID, models.DocNationalID, s.now)
		s.Require().NoError(s.store.Append(s.ctx, doc))

		out, err := s.store.Execute(s.ctx, doc.ID,
			func(*models.KYCDocument) error { return nil },
			func(cur *models.KYCDocument) { cur.Status = models.DocumentVerified },
		)
		s.Require().NoError(err)
		s.Equal(models.DocumentVerified, out.Status)
	})

	s.Run("unknown id", func() {
		_, err := s.store.Execute(s.ctx, uuid.New(),
			func(*models.KYCDocument) error { return nil },
			func(*models.KYCDocument) {},
		)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}
