package audit

import "time"

// Event is emitted from domain logic to capture compliance-relevant
// actions. Keep it transport-agnostic so publishers can fan out.
type Event struct {
	Timestamp  time.Time
	InvestorID string
	Action     string
	// ActorID tracks who performed the action (reviewer, admin) when
	// different from the investor. String to support various actor
	// identification schemes.
	ActorID string
	Reason  string
	// RequestID correlates the event with the inbound HTTP request.
	RequestID string
	// Detail carries action-specific context (target status, document
	// type, accreditation category). Small and non-PII by convention.
	Detail map[string]string
}

// AuditEvent enumerates the actions the compliance engine records.
// Every successful state-changing operation emits exactly one.
type AuditEvent string

const (
	EventInvestorCreated       AuditEvent = "investor_created"
	EventStatusChanged         AuditEvent = "investor_status_changed"
	EventInvestorRejected      AuditEvent = "investor_rejected"
	EventKYCSubmitted          AuditEvent = "kyc_submitted"
	EventKYCVerified           AuditEvent = "kyc_verified"
	EventKYCDocumentAdded      AuditEvent = "kyc_document_added"
	EventKYCDocumentReviewed   AuditEvent = "kyc_document_reviewed"
	EventAccreditationVerified AuditEvent = "accreditation_verified"
)
