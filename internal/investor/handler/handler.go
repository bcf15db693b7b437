package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dealgate/internal/investor/models"
	"dealgate/internal/investor/service"
	"dealgate/internal/platform/metrics"
	"dealgate/internal/platform/middleware"
	dErrors "dealgate/pkg/domain-errors"
	"dealgate/pkg/platform/httputil"
	"dealgate/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the compliance operations the HTTP layer exposes.
type Service interface {
	Create(ctx context.Context, accountID string, input models.CreateInvestorInput) (*models.Investor, error)
	GetByID(ctx context.Context, id models.InvestorID) (*models.Investor, error)
	GetByAccountID(ctx context.Context, accountID string) (*models.Investor, error)
	List(ctx context.Context, filter models.ListFilter) ([]*models.Investor, error)
	UpdateStatus(ctx context.Context, id models.InvestorID, newStatus models.Status, actorID string) (*models.Investor, error)
	Reject(ctx context.Context, id models.InvestorID, reason, actorID string) (*models.Investor, error)
	SubmitKYC(ctx context.Context, id models.InvestorID) (*models.Investor, error)
	VerifyKYC(ctx context.Context, id models.InvestorID, reviewerID string) (*models.Investor, error)
	AddKYCDocument(ctx context.Context, investorID models.InvestorID, docType models.DocumentType, fileRef string) (*models.KYCDocument, error)
	ReviewKYCDocument(ctx context.Context, docID models.DocumentID, verdict models.DocumentStatus, reviewerID, reason string) (*models.KYCDocument, error)
	GetKYCDocuments(ctx context.Context, investorID models.InvestorID) ([]*models.KYCDocument, error)
	VerifyAccreditedStatus(ctx context.Context, id models.InvestorID, input service.VerifyAccreditationInput) (*models.Investor, error)
	GetAccreditationHistory(ctx context.Context, investorID models.InvestorID) ([]*models.AccreditationVerification, error)
	CheckEligibilityForDeal(ctx context.Context, id models.InvestorID) (models.EligibilityResult, error)
}

// Handler handles investor compliance endpoints.
type Handler struct {
	logger       *slog.Logger
	compliance   Service
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

// New creates a new investor Handler.
func New(compliance Service, logger *slog.Logger, m *metrics.Metrics, jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		compliance:   compliance,
		metrics:      m,
		jwtValidator: jwtValidator,
	}
}

// Register registers the investor routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	investorRouter := chi.NewRouter()
	investorRouter.Use(middleware.Recovery(h.logger))
	investorRouter.Use(middleware.RequestID)
	investorRouter.Use(middleware.RequestTime)
	investorRouter.Use(middleware.Logger(h.logger))
	investorRouter.Use(middleware.ContentTypeJSON)
	investorRouter.Use(middleware.Latency(h.metrics))
	investorRouter.Use(middleware.RequireAuth(h.jwtValidator, h.logger))

	investorRouter.Post("/investors", h.handleCreate)
	investorRouter.Get("/investors", h.handleList)
	investorRouter.Get("/investors/{id}", h.handleGetByID)
	investorRouter.Get("/investors/account/{accountID}", h.handleGetByAccount)
	investorRouter.Put("/investors/{id}/status", h.handleUpdateStatus)
	investorRouter.Post("/investors/{id}/reject", h.handleReject)
	investorRouter.Post("/investors/{id}/kyc/submit", h.handleSubmitKYC)
	investorRouter.Post("/investors/{id}/kyc/verify", h.handleVerifyKYC)
	investorRouter.Post("/investors/{id}/documents", h.handleAddDocument)
	investorRouter.Get("/investors/{id}/documents", h.handleListDocuments)
	investorRouter.Post("/documents/{id}/review", h.handleReviewDocument)
	investorRouter.Post("/investors/{id}/accreditation", h.handleVerifyAccreditation)
	investorRouter.Get("/investors/{id}/accreditation", h.handleAccreditationHistory)
	investorRouter.Get("/investors/{id}/eligibility", h.handleCheckEligibility)

	r.Mount("/", investorRouter)
}

// investorID parses the {id} route param. A malformed ID is a validation
// error, not a 404: the route matched, the input didn't.
func investorID(r *http.Request) (models.InvestorID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, "id must be a valid UUID")
	}
	return id, nil
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	// The application is filed for the caller's own account unless an
	// admin names one explicitly.
	accountID := req.AccountID
	if accountID == "" {
		accountID = requestcontext.AccountID(ctx)
	}

	inv, err := h.compliance.Create(ctx, accountID, req.Input)
	if err != nil {
		h.logError(ctx, "create investor failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, inv)
}

func (h *Handler) handleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := investorID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	inv, err := h.compliance.GetByID(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, inv)
}

func (h *Handler) handleGetByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	inv, err := h.compliance.GetByAccountID(r.Context(), accountID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if inv == nil {
		// Zero-or-one profile per account; absence is a fact.
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"investor": nil})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, inv)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	investors, err := h.compliance.List(r.Context(), filter)
	if err != nil {
		h.logError(r.Context(), "list investors failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"investors": investors})
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := investorID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var req updateStatusRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	inv, err := h.compliance.UpdateStatus(r.Context(), id, req.Status, requestcontext.ActorID(r.Context()))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, inv)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	id, err := investorID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var req rejectRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	inv, err := h.compliance.Reject(r.Context(), id, req.Reason, requestcontext.ActorID(r.Context()))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, inv)
}

func (h *Handler) handleSubmitKYC(w http.ResponseWriter, r *http.Request) {
	id, err := investorID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	inv, err := h.compliance.SubmitKYC(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, inv)
}

func (h *Handler) handleVerifyKYC(w http.ResponseWriter, r *http.Request) {
	id, err := investorID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	inv, err := h.compliance.VerifyKYC(r.Context(), id, requestcontext.ActorID(r.Context()))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, inv)
}

func (h *Handler) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	id, err := investorID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var req addDocumentRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	doc, err := h.compliance.AddKYCDocument(r.Context(), id, req.DocumentType, req.FileRef)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, doc)
}

func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := investorID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	docs, err := h.compliance.GetKYCDocuments(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (h *Handler) handleReviewDocument(w http.ResponseWriter, r *http.Request) {
	docID, err := investorID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var req reviewDocumentRequest
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	doc, err := h.compliance.ReviewKYCDocument(r.Context(), docID, req.Verdict, requestcontext.ActorID(r.Context()), req.Reason)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, doc)
}

func (h *Handler) handleVerifyAccreditation(w http.ResponseWriter, r *http.Request) {
	id, err := investorID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var req service.VerifyAccreditationInput
	if err := decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if req.ReviewerID == "" {
		req.ReviewerID = requestcontext.ActorID(r.Context())
	}
	inv, err := h.compliance.VerifyAccreditedStatus(r.Context(), id, req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, inv)
}

func (h *Handler) handleAccreditationHistory(w http.ResponseWriter, r *http.Request) {
	id, err := investorID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	recs, err := h.compliance.GetAccreditationHistory(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"verifications": recs})
}

func (h *Handler) handleCheckEligibility(w http.ResponseWriter, r *http.Request) {
	id, err := investorID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	result, err := h.compliance.CheckEligibilityForDeal(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"error", err.Error(),
		"request_id", requestcontext.RequestID(ctx),
	)
}
