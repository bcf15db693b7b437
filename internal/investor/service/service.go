// Package service implements the compliance operations that own all writes
// to Investor, KYCDocument, and AccreditationVerification. Stores are dumb;
// every rule lives here or on the models.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	invmetrics "dealgate/internal/investor/metrics"
	"dealgate/internal/investor/models"
	"dealgate/internal/investor/rules"
	dErrors "dealgate/pkg/domain-errors"
	"dealgate/pkg/platform/audit"
	"dealgate/pkg/platform/sentinel"
)

// InvestorStore is the persistence collaborator for investor records.
// Execute must hold the record lock (mutex or FOR UPDATE) across both
// callbacks so concurrent writers on the same investor serialize against
// current state rather than a stale read.
type InvestorStore interface {
	CreateIfAccountAvailable(ctx context.Context, inv *models.Investor) error
	FindByID(ctx context.Context, id models.InvestorID) (*models.Investor, error)
	FindByAccountID(ctx context.Context, accountID string) (*models.Investor, error)
	List(ctx context.Context, filter models.ListFilter, now time.Time) ([]*models.Investor, error)
	Execute(ctx context.Context, id models.InvestorID,
		validate func(*models.Investor) error,
		mutate func(*models.Investor)) (*models.Investor, error)
}

// DocumentStore persists KYC documents. Append supersedes any prior
// pending document of the same type; nothing is ever deleted.
type DocumentStore interface {
	Append(ctx context.Context, doc *models.KYCDocument) error
	FindByID(ctx context.Context, id models.DocumentID) (*models.KYCDocument, error)
	ListByInvestor(ctx context.Context, investorID models.InvestorID) ([]*models.KYCDocument, error)
	Execute(ctx context.Context, id models.DocumentID,
		validate func(*models.KYCDocument) error,
		mutate func(*models.KYCDocument)) (*models.KYCDocument, error)
}

// AccreditationStore persists the accreditation assessment history.
type AccreditationStore interface {
	Append(ctx context.Context, rec *models.AccreditationVerification) error
	ListByInvestor(ctx context.Context, investorID models.InvestorID) ([]*models.AccreditationVerification, error)
}

// Service orchestrates the investor compliance lifecycle.
type Service struct {
	investors      InvestorStore
	documents      DocumentStore
	accreditations AccreditationStore
	classifier     *rules.Classifier
	auditEmitter   *auditEmitter
	metrics        *invmetrics.Metrics
}

type serviceConfig struct {
	logger         *slog.Logger
	auditPublisher audit.Publisher
	metrics        *invmetrics.Metrics
}

// Option customizes optional service collaborators.
type Option func(*serviceConfig)

// WithLogger sets the logger used for audit emit failures.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *serviceConfig) { cfg.logger = logger }
}

// WithAuditPublisher routes audit events to the given publisher.
func WithAuditPublisher(pub audit.Publisher) Option {
	return func(cfg *serviceConfig) { cfg.auditPublisher = pub }
}

// WithMetrics enables module metrics.
func WithMetrics(m *invmetrics.Metrics) Option {
	return func(cfg *serviceConfig) { cfg.metrics = m }
}

// New builds the compliance service.
func New(investors InvestorStore, documents DocumentStore, accreditations AccreditationStore,
	classifier *rules.Classifier, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Service{
		investors:      investors,
		documents:      documents,
		accreditations: accreditations,
		classifier:     classifier,
		auditEmitter:   newAuditEmitter(cfg.logger, cfg.auditPublisher),
		metrics:        cfg.metrics,
	}
}

// wrapInvestorErr translates store sentinels into domain errors with one
// handling path for callers.
func wrapInvestorErr(err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "investor not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeInvalidOperation, "account already has an investor profile")
	default:
		var de *dErrors.Error
		if errors.As(err, &de) {
			return err
		}
		return dErrors.Wrap(err, dErrors.CodeFetchFailed, "investor storage unavailable")
	}
}

func wrapDocumentErr(err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "document not found")
	default:
		var de *dErrors.Error
		if errors.As(err, &de) {
			return err
		}
		return dErrors.Wrap(err, dErrors.CodeFetchFailed, "document storage unavailable")
	}
}

func (s *Service) incrementInvestorsCreated() {
	if s.metrics != nil {
		s.metrics.IncrementInvestorsCreated()
	}
}

func (s *Service) incrementTransition(to models.Status) {
	if s.metrics != nil {
		s.metrics.IncrementTransition(string(to))
	}
}

func (s *Service) incrementTransitionRejected() {
	if s.metrics != nil {
		s.metrics.IncrementTransitionRejected()
	}
}
