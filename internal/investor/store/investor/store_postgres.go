package investor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"dealgate/internal/investor/models"
	"dealgate/pkg/platform/sentinel"
)

// PostgresStore persists investors in a single table. Per-investor
// serializability comes from SELECT ... FOR UPDATE inside Execute, so a
// concurrent writer blocks until the first commit and then re-validates
// against the committed state.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const investorColumns = `
	id, account_id, legal_name, entity_type,
	status, created_at, updated_at,
	approved_at, approved_by, rejected_at, rejected_by, rejection_reason,
	email, phone, tax_id,
	nationality, country_of_residence, residency_status, country_classification,
	kyc_status, kyc_verified_at, kyc_expires_at,
	is_accredited, accredited_category, accredited_verified_at, accredited_expires_at,
	politically_exposed, related_to_regulator, sanctions_hit, requires_government_approval`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvestor(row rowScanner) (*models.Investor, error) {
	var inv models.Investor
	var approvedBy, rejectedBy, rejectionReason, accreditedCategory sql.NullString
	err := row.Scan(
		&inv.ID, &inv.AccountID, &inv.LegalName, &inv.Entity,
		&inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.ApprovedAt, &approvedBy, &inv.RejectedAt, &rejectedBy, &rejectionReason,
		&inv.Email, &inv.Phone, &inv.TaxID,
		&inv.Nationality, &inv.CountryOfResidence, &inv.Residency, &inv.CountryClassification,
		&inv.KYCStatus, &inv.KYCVerifiedAt, &inv.KYCExpiresAt,
		&inv.IsAccredited, &accreditedCategory, &inv.AccreditedVerifiedAt, &inv.AccreditedExpiresAt,
		&inv.PoliticallyExposed, &inv.RelatedToRegulator, &inv.SanctionsHit, &inv.RequiresGovernmentApproval,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan investor: %w", err)
	}
	inv.ApprovedBy = approvedBy.String
	inv.RejectedBy = rejectedBy.String
	inv.RejectionReason = rejectionReason.String
	inv.AccreditedCategory = models.AccreditedCategory(accreditedCategory.String)
	return &inv, nil
}

func (s *PostgresStore) CreateIfAccountAvailable(ctx context.Context, inv *models.Investor) error {
	query := `
		INSERT INTO investors (` + investorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)
	`
	_, err := s.db.ExecContext(ctx, query, insertArgs(inv)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert investor: %w", err)
	}
	return nil
}

func insertArgs(inv *models.Investor) []any {
	return []any{
		inv.ID, inv.AccountID, inv.LegalName, inv.Entity,
		inv.Status, inv.CreatedAt, inv.UpdatedAt,
		inv.ApprovedAt, nullable(inv.ApprovedBy), inv.RejectedAt, nullable(inv.RejectedBy), nullable(inv.RejectionReason),
		inv.Email, inv.Phone, inv.TaxID,
		inv.Nationality, inv.CountryOfResidence, inv.Residency, inv.CountryClassification,
		inv.KYCStatus, inv.KYCVerifiedAt, inv.KYCExpiresAt,
		inv.IsAccredited, nullable(string(inv.AccreditedCategory)), inv.AccreditedVerifiedAt, inv.AccreditedExpiresAt,
		inv.PoliticallyExposed, inv.RelatedToRegulator, inv.SanctionsHit, inv.RequiresGovernmentApproval,
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *PostgresStore) FindByID(ctx context.Context, id models.InvestorID) (*models.Investor, error) {
	query := `SELECT ` + investorColumns + ` FROM investors WHERE id = $1`
	return scanInvestor(s.db.QueryRowContext(ctx, query, id))
}

func (s *PostgresStore) FindByAccountID(ctx context.Context, accountID string) (*models.Investor, error) {
	query := `SELECT ` + investorColumns + ` FROM investors WHERE account_id = $1`
	return scanInvestor(s.db.QueryRowContext(ctx, query, accountID))
}

func (s *PostgresStore) List(ctx context.Context, filter models.ListFilter, now time.Time) ([]*models.Investor, error) {
	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != nil {
		conds = append(conds, "status = "+arg(*filter.Status))
	}
	if filter.Classification != nil {
		conds = append(conds, "country_classification = "+arg(*filter.Classification))
	}
	if filter.Accredited != nil {
		conds = append(conds, "is_accredited = "+arg(*filter.Accredited))
	}
	if filter.KYCExpired {
		conds = append(conds, "kyc_expires_at IS NOT NULL AND kyc_expires_at < "+arg(now))
	}

	query := `SELECT ` + investorColumns + ` FROM investors`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + arg(filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list investors: %w", err)
	}
	defer rows.Close()

	var out []*models.Investor
	for rows.Next() {
		inv, err := scanInvestor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// Execute locks the row, runs validate then mutate, and writes back all
// mutable columns inside one transaction. A validate error rolls back and
// leaves stored state untouched.
func (s *PostgresStore) Execute(ctx context.Context, id models.InvestorID,
	validate func(*models.Investor) error,
	mutate func(*models.Investor)) (*models.Investor, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `SELECT ` + investorColumns + ` FROM investors WHERE id = $1 FOR UPDATE`
	inv, err := scanInvestor(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := validate(inv); err != nil {
		return nil, err
	}
	mutate(inv)

	update := `
		UPDATE investors SET
			status = $2, updated_at = $3,
			approved_at = $4, approved_by = $5,
			rejected_at = $6, rejected_by = $7, rejection_reason = $8,
			kyc_status = $9, kyc_verified_at = $10, kyc_expires_at = $11,
			is_accredited = $12, accredited_category = $13,
			accredited_verified_at = $14, accredited_expires_at = $15,
			country_of_residence = $16, country_classification = $17,
			requires_government_approval = $18
		WHERE id = $1
	`
	_, err = tx.ExecContext(ctx, update,
		inv.ID,
		inv.Status, inv.UpdatedAt,
		inv.ApprovedAt, nullable(inv.ApprovedBy),
		inv.RejectedAt, nullable(inv.RejectedBy), nullable(inv.RejectionReason),
		inv.KYCStatus, inv.KYCVerifiedAt, inv.KYCExpiresAt,
		inv.IsAccredited, nullable(string(inv.AccreditedCategory)),
		inv.AccreditedVerifiedAt, inv.AccreditedExpiresAt,
		inv.CountryOfResidence, inv.CountryClassification,
		inv.RequiresGovernmentApproval,
	)
	if err != nil {
		return nil, fmt.Errorf("update investor: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return inv, nil
}
