package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dealgate/internal/investor/models"
	dErrors "dealgate/pkg/domain-errors"
)

type createRequest struct {
	AccountID string                     `json:"account_id,omitempty"`
	Input     models.CreateInvestorInput `json:"investor"`
}

type updateStatusRequest struct {
	Status models.Status `json:"status"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type addDocumentRequest struct {
	DocumentType models.DocumentType `json:"document_type"`
	FileRef      string              `json:"file_ref"`
}

type reviewDocumentRequest struct {
	Verdict models.DocumentStatus `json:"verdict"`
	Reason  string                `json:"reason,omitempty"`
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return dErrors.New(dErrors.CodeValidation, "request body is not valid JSON")
	}
	return nil
}

func parseListFilter(r *http.Request) (models.ListFilter, error) {
	q := r.URL.Query()
	var filter models.ListFilter

	if raw := q.Get("status"); raw != "" {
		status := models.Status(raw)
		if !status.IsValid() {
			return filter, dErrors.Newf(dErrors.CodeValidation, "unknown status %q", raw)
		}
		filter.Status = &status
	}
	if raw := q.Get("classification"); raw != "" {
		classification := models.CountryClassification(raw)
		filter.Classification = &classification
	}
	if raw := q.Get("accredited"); raw != "" {
		accredited, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, dErrors.New(dErrors.CodeValidation, "accredited must be true or false")
		}
		filter.Accredited = &accredited
	}
	if raw := q.Get("kyc_expired"); raw != "" {
		expired, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, dErrors.New(dErrors.CodeValidation, "kyc_expired must be true or false")
		}
		filter.KYCExpired = expired
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filter, dErrors.New(dErrors.CodeValidation, "limit must be a non-negative integer")
		}
		filter.Limit = limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return filter, dErrors.New(dErrors.CodeValidation, "offset must be a non-negative integer")
		}
		filter.Offset = offset
	}
	return filter, nil
}
