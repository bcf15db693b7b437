package models

import (
	"time"

	dErrors "dealgate/pkg/domain-errors"
)

// DocumentType is the closed catalogue of accepted KYC document kinds.
type DocumentType string

const (
	DocTaxIDProof               DocumentType = "tax_id_proof"
	DocNationalID               DocumentType = "national_id"
	DocPassport                 DocumentType = "passport"
	DocAddressProof             DocumentType = "address_proof"
	DocBankStatement            DocumentType = "bank_statement"
	DocIncorporationCertificate DocumentType = "incorporation_certificate"
)

// IsValid reports whether t is in the catalogue.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocTaxIDProof, DocNationalID, DocPassport, DocAddressProof,
		DocBankStatement, DocIncorporationCertificate:
		return true
	}
	return false
}

// DocumentStatus is the per-document reviewer verdict.
type DocumentStatus string

const (
	DocumentPending    DocumentStatus = "pending"
	DocumentVerified   DocumentStatus = "verified"
	DocumentRejected   DocumentStatus = "rejected"
	DocumentSuperseded DocumentStatus = "superseded"
)

// KYCDocument records one uploaded identity/financial/entity document.
// FileRef is an opaque reference owned by the external storage
// collaborator; this engine never sees file bytes. Documents are never
// deleted, only superseded by a newer upload of the same type.
type KYCDocument struct {
	ID         DocumentID     `json:"id"`
	InvestorID InvestorID     `json:"investor_id"`
	Type       DocumentType   `json:"document_type"`
	FileRef    string         `json:"file_ref"`
	Status     DocumentStatus `json:"status"`
	// RejectionReason is set only when Status is rejected.
	RejectionReason string     `json:"rejection_reason,omitempty"`
	ReviewedBy      string     `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	// Optional validity window declared on the document itself
	// (e.g. passport expiry).
	ValidFrom  *time.Time `json:"valid_from,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	UploadedAt time.Time  `json:"uploaded_at"`
}

// CanReview guards the reviewer verdict: only pending documents accept
// one, and a rejection needs a reason.
func (d *KYCDocument) CanReview(verdict DocumentStatus, reason string) error {
	if verdict != DocumentVerified && verdict != DocumentRejected {
		return dErrors.Newf(dErrors.CodeValidation, "verdict must be verified or rejected, got %q", verdict)
	}
	if d.Status != DocumentPending {
		return dErrors.Newf(dErrors.CodeInvalidOperation, "document is %s, only pending documents can be reviewed", d.Status)
	}
	if verdict == DocumentRejected && reason == "" {
		return dErrors.New(dErrors.CodeValidation, "rejection reason is required")
	}
	return nil
}

// ApplyReview records the reviewer verdict.
func (d *KYCDocument) ApplyReview(verdict DocumentStatus, reviewerID, reason string, now time.Time) {
	d.Status = verdict
	d.ReviewedBy = reviewerID
	d.ReviewedAt = &now
	if verdict == DocumentRejected {
		d.RejectionReason = reason
	}
}
