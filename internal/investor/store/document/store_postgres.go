package document

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dealgate/internal/investor/models"
	"dealgate/pkg/platform/sentinel"
)

// PostgresStore persists KYC documents. Append and the supersede of prior
// same-type pending documents happen in one transaction.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const documentColumns = `
	id, investor_id, document_type, file_ref, status,
	rejection_reason, reviewed_by, reviewed_at,
	valid_from, valid_until, uploaded_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*models.KYCDocument, error) {
	var doc models.KYCDocument
	var rejectionReason, reviewedBy sql.NullString
	err := row.Scan(
		&doc.ID, &doc.InvestorID, &doc.Type, &doc.FileRef, &doc.Status,
		&rejectionReason, &reviewedBy, &doc.ReviewedAt,
		&doc.ValidFrom, &doc.ValidUntil, &doc.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}
	doc.RejectionReason = rejectionReason.String
	doc.ReviewedBy = reviewedBy.String
	return &doc, nil
}

func (s *PostgresStore) Append(ctx context.Context, doc *models.KYCDocument) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	supersede := `
		UPDATE kyc_documents SET status = $1
		WHERE investor_id = $2 AND document_type = $3 AND status = $4
	`
	if _, err := tx.ExecContext(ctx, supersede,
		models.DocumentSuperseded, doc.InvestorID, doc.Type, models.DocumentPending); err != nil {
		return fmt.Errorf("supersede documents: %w", err)
	}

	insert := `
		INSERT INTO kyc_documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	if _, err := tx.ExecContext(ctx, insert,
		doc.ID, doc.InvestorID, doc.Type, doc.FileRef, doc.Status,
		nullable(doc.RejectionReason), nullable(doc.ReviewedBy), doc.ReviewedAt,
		doc.ValidFrom, doc.ValidUntil, doc.UploadedAt); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	return tx.Commit()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *PostgresStore) FindByID(ctx context.Context, id models.DocumentID) (*models.KYCDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM kyc_documents WHERE id = $1`
	return scanDocument(s.db.QueryRowContext(ctx, query, id))
}

func (s *PostgresStore) ListByInvestor(ctx context.Context, investorID models.InvestorID) ([]*models.KYCDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM kyc_documents WHERE investor_id = $1 ORDER BY uploaded_at DESC`
	rows, err := s.db.QueryContext(ctx, query, investorID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var out []*models.KYCDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Execute(ctx context.Context, id models.DocumentID,
	validate func(*models.KYCDocument) error,
	mutate func(*models.KYCDocument)) (*models.KYCDocument, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `SELECT ` + documentColumns + ` FROM kyc_documents WHERE id = $1 FOR UPDATE`
	doc, err := scanDocument(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := validate(doc); err != nil {
		return nil, err
	}
	mutate(doc)

	update := `
		UPDATE kyc_documents SET
			status = $2, rejection_reason = $3, reviewed_by = $4, reviewed_at = $5
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, update,
		doc.ID, doc.Status, nullable(doc.RejectionReason), nullable(doc.ReviewedBy), doc.ReviewedAt); err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return doc, nil
}
