package accreditation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"dealgate/internal/investor/models"
)

// PostgresStore persists the accreditation history. Supporting document
// IDs live in a jsonb column; history rows are append-only.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, rec *models.AccreditationVerification) error {
	docs, err := json.Marshal(rec.SupportingDocuments)
	if err != nil {
		return fmt.Errorf("marshal supporting documents: %w", err)
	}
	query := `
		INSERT INTO accreditation_verifications (
			id, investor_id, category, declared_income, declared_net_worth,
			supporting_documents, verified, verified_by, verified_at, expires_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = s.db.ExecContext(ctx, query,
		rec.ID, rec.InvestorID, rec.Category, rec.DeclaredIncome, rec.DeclaredNetWorth,
		docs, rec.Verified, rec.VerifiedBy, rec.VerifiedAt, rec.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert accreditation: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByInvestor(ctx context.Context, investorID models.InvestorID) ([]*models.AccreditationVerification, error) {
	query := `
		SELECT id, investor_id, category, declared_income, declared_net_worth,
			supporting_documents, verified, verified_by, verified_at, expires_at
		FROM accreditation_verifications
		WHERE investor_id = $1
		ORDER BY verified_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, investorID)
	if err != nil {
		return nil, fmt.Errorf("list accreditations: %w", err)
	}
	defer rows.Close()

	var out []*models.AccreditationVerification
	for rows.Next() {
		var rec models.AccreditationVerification
		var verifiedBy sql.NullString
		var docs []byte
		if err := rows.Scan(
			&rec.ID, &rec.InvestorID, &rec.Category, &rec.DeclaredIncome, &rec.DeclaredNetWorth,
			&docs, &rec.Verified, &verifiedBy, &rec.VerifiedAt, &rec.ExpiresAt,
		); err != nil {
			return nil, fmt.Errorf("scan accreditation: %w", err)
		}
		rec.VerifiedBy = verifiedBy.String
		if len(docs) > 0 {
			if err := json.Unmarshal(docs, &rec.SupportingDocuments); err != nil {
				return nil, fmt.Errorf("unmarshal supporting documents: %w", err)
			}
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
