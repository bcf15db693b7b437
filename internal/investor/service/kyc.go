package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"dealgate/internal/investor/models"
	dErrors "dealgate/pkg/domain-errors"
	"dealgate/pkg/platform/audit"
	"dealgate/pkg/requestcontext"
)

// SubmitKYC moves the investor into the review queue. Stricter than the
// bare transition table: it couples lifecycle status and KYC status, so
// the joint guard lives on the model and runs under the record lock.
func (s *Service) SubmitKYC(ctx context.Context, id models.InvestorID) (*models.Investor, error) {
	now := requestcontext.Now(ctx)
	inv, err := s.investors.Execute(ctx, id,
		func(inv *models.Investor) error {
			return inv.CanSubmitKYC()
		},
		func(inv *models.Investor) {
			inv.ApplySubmitKYC(now)
		},
	)
	if err != nil {
		err = wrapInvestorErr(err)
		if dErrors.HasCode(err, dErrors.CodeInvalidOperation) {
			s.incrementTransitionRejected()
		}
		return nil, err
	}

	s.auditEmitter.emit(ctx, audit.EventKYCSubmitted, inv.ID, requestcontext.ActorID(ctx), "", nil)
	s.incrementTransition(models.StatusKYCSubmitted)
	return inv, nil
}

// VerifyKYC records a successful identity review and opens the two-year
// renewal window.
func (s *Service) VerifyKYC(ctx context.Context, id models.InvestorID, reviewerID string) (*models.Investor, error) {
	if reviewerID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "reviewer_id is required")
	}

	now := requestcontext.Now(ctx)
	inv, err := s.investors.Execute(ctx, id,
		func(inv *models.Investor) error {
			return inv.CanVerifyKYC()
		},
		func(inv *models.Investor) {
			inv.ApplyVerifyKYC(now)
		},
	)
	if err != nil {
		err = wrapInvestorErr(err)
		if dErrors.HasCode(err, dErrors.CodeInvalidOperation) {
			s.incrementTransitionRejected()
		}
		return nil, err
	}

	s.auditEmitter.emit(ctx, audit.EventKYCVerified, inv.ID, reviewerID, "", nil)
	s.incrementTransition(models.StatusKYCVerified)
	return inv, nil
}

// AddKYCDocument records an uploaded document reference. The engine stores
// only the opaque file reference; bytes live with the storage
// collaborator. A newer upload supersedes any pending document of the same
// type.
func (s *Service) AddKYCDocument(ctx context.Context, investorID models.InvestorID, docType models.DocumentType, fileRef string) (*models.KYCDocument, error) {
	if !docType.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeValidation, "unknown document_type %q", docType)
	}
	if strings.TrimSpace(fileRef) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "file_ref is required")
	}

	// The document must belong to a real investor.
	if _, err := s.investors.FindByID(ctx, investorID); err != nil {
		return nil, wrapInvestorErr(err)
	}

	doc := &models.KYCDocument{
		ID:         uuid.New(),
		InvestorID: investorID,
		Type:       docType,
		FileRef:    fileRef,
		Status:     models.DocumentPending,
		UploadedAt: requestcontext.Now(ctx),
	}
	if err := s.documents.Append(ctx, doc); err != nil {
		return nil, wrapDocumentErr(err)
	}

	s.auditEmitter.emit(ctx, audit.EventKYCDocumentAdded, investorID, requestcontext.ActorID(ctx), "", map[string]string{
		"document_type": string(docType),
	})
	return doc, nil
}

// ReviewKYCDocument records the external reviewer's verdict on one
// document. Content verification (OCR, liveness) happens outside; only the
// outcome is recorded here.
func (s *Service) ReviewKYCDocument(ctx context.Context, docID models.DocumentID, verdict models.DocumentStatus, reviewerID, reason string) (*models.KYCDocument, error) {
	if reviewerID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "reviewer_id is required")
	}

	now := requestcontext.Now(ctx)
	doc, err := s.documents.Execute(ctx, docID,
		func(doc *models.KYCDocument) error {
			return doc.CanReview(verdict, reason)
		},
		func(doc *models.KYCDocument) {
			doc.ApplyReview(verdict, reviewerID, reason, now)
		},
	)
	if err != nil {
		return nil, wrapDocumentErr(err)
	}

	s.auditEmitter.emit(ctx, audit.EventKYCDocumentReviewed, doc.InvestorID, reviewerID, reason, map[string]string{
		"document_type": string(doc.Type),
		"verdict":       string(verdict),
	})
	return doc, nil
}

// GetKYCDocuments lists an investor's documents, newest first.
func (s *Service) GetKYCDocuments(ctx context.Context, investorID models.InvestorID) ([]*models.KYCDocument, error) {
	if _, err := s.investors.FindByID(ctx, investorID); err != nil {
		return nil, wrapInvestorErr(err)
	}
	docs, err := s.documents.ListByInvestor(ctx, investorID)
	if err != nil {
		return nil, wrapDocumentErr(err)
	}
	return docs, nil
}
