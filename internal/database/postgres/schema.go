package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		client_id            UUID PRIMARY KEY,
		first_name           TEXT NOT NULL,
		last_name            TEXT NOT NULL,
		email                TEXT NOT NULL,
		phone                TEXT NOT NULL,
		date_of_birth        TEXT NOT NULL,
		piercing_type        TEXT NOT NULL,
		jewelry_choice       TEXT NOT NULL,
		is_minor             BOOLEAN NOT NULL DEFAULT FALSE,
		parent_first_name    TEXT,
		parent_last_name     TEXT,
		parent_email         TEXT,
		parent_phone         TEXT,
		signature_url        TEXT NOT NULL,
		id_photo_url         TEXT NOT NULL,
		parent_signature_url TEXT,
		parent_id_photo_url  TEXT,
		agreed_terms         BOOLEAN NOT NULL,
		created_at           TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_name ON clients (LOWER(first_name), LOWER(last_name))`,
	`CREATE TABLE IF NOT EXISTS piercings (
		record_id         UUID PRIMARY KEY,
		client_id         UUID NOT NULL REFERENCES clients (client_id),
		piercing_type     TEXT NOT NULL,
		category          TEXT NOT NULL,
		price             NUMERIC(10, 2) NOT NULL,
		date_pierced      TIMESTAMPTZ NOT NULL,
		downsize_due_date TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_piercings_client ON piercings (client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_piercings_downsize ON piercings (downsize_due_date) WHERE downsize_due_date IS NOT NULL`,
}

func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
