// Package store holds the shared schema migrations for the Postgres-backed
// stores. Each entity store lives in its own subpackage; the tables are
// created here so a single call from main prepares all of them.
package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS investors (
					id UUID PRIMARY KEY,
					account_id TEXT UNIQUE NOT NULL,
					legal_name TEXT NOT NULL,
					entity_type TEXT NOT NULL,
					status TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL,
					updated_at TIMESTAMPTZ NOT NULL,
					approved_at TIMESTAMPTZ,
					approved_by TEXT,
					rejected_at TIMESTAMPTZ,
					rejected_by TEXT,
					rejection_reason TEXT,
					email TEXT NOT NULL,
					phone TEXT NOT NULL,
					tax_id TEXT NOT NULL,
					nationality TEXT NOT NULL,
					country_of_residence TEXT NOT NULL,
					residency_status TEXT NOT NULL,
					country_classification TEXT NOT NULL,
					kyc_status TEXT NOT NULL,
					kyc_verified_at TIMESTAMPTZ,
					kyc_expires_at TIMESTAMPTZ,
					is_accredited BOOLEAN NOT NULL DEFAULT FALSE,
					accredited_category TEXT,
					accredited_verified_at TIMESTAMPTZ,
					accredited_expires_at TIMESTAMPTZ,
					politically_exposed BOOLEAN NOT NULL DEFAULT FALSE,
					related_to_regulator BOOLEAN NOT NULL DEFAULT FALSE,
					sanctions_hit BOOLEAN NOT NULL DEFAULT FALSE,
					requires_government_approval BOOLEAN NOT NULL DEFAULT FALSE
				)`,
				`CREATE INDEX IF NOT EXISTS idx_investors_status ON investors(status)`,
				`CREATE INDEX IF NOT EXISTS idx_investors_classification ON investors(country_classification)`,
				`CREATE INDEX IF NOT EXISTS idx_investors_kyc_expires ON investors(kyc_expires_at)`,

				`CREATE TABLE IF NOT EXISTS kyc_documents (
					id UUID PRIMARY KEY,
					investor_id UUID NOT NULL REFERENCES investors(id),
					document_type TEXT NOT NULL,
					file_ref TEXT NOT NULL,
					status TEXT NOT NULL,
					rejection_reason TEXT,
					reviewed_by TEXT,
					reviewed_at TIMESTAMPTZ,
					valid_from TIMESTAMPTZ,
					valid_until TIMESTAMPTZ,
					uploaded_at TIMESTAMPTZ NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_kyc_documents_investor ON kyc_documents(investor_id)`,

				`CREATE TABLE IF NOT EXISTS accreditation_verifications (
					id UUID PRIMARY KEY,
					investor_id UUID NOT NULL REFERENCES investors(id),
					category TEXT NOT NULL,
					declared_income BIGINT NOT NULL DEFAULT 0,
					declared_net_worth BIGINT NOT NULL DEFAULT 0,
					supporting_documents JSONB NOT NULL DEFAULT '[]',
					verified BOOLEAN NOT NULL,
					verified_by TEXT NOT NULL,
					verified_at TIMESTAMPTZ NOT NULL,
					expires_at TIMESTAMPTZ NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_accreditation_investor ON accreditation_verifications(investor_id)`,
			}
			for _, q := range queries {
				if _, err := tx.Exec(q); err != nil {
					return err
				}
			}
			return nil
		},
	},
}

// Migrate brings the schema up to the latest version. Versions already
// applied are skipped, so it is safe to run on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var current sql.NullInt64
	if err := db.QueryRowContext(ctx,
		`SELECT MAX(version) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if current.Valid && m.Version <= int(current.Int64) {
			continue
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}
		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO schema_migrations (version, description) VALUES ($1, $2)`,
			m.Version, m.Description); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}
	return nil
}
