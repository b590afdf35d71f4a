package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/liquex/liquex/internal/pkg/models"
)

// PostgresTransactionRepo archives transaction records in PostgreSQL so the
// history survives session resets
type PostgresTransactionRepo struct {
	db *sqlx.DB
}

// NewPostgresTransactionRepo creates a new PostgreSQL-backed archive
func NewPostgresTransactionRepo(db *sqlx.DB) *PostgresTransactionRepo {
	return &PostgresTransactionRepo{db: db}
}

// Append inserts a new transaction record
func (r *PostgresTransactionRepo) Append(ctx context.Context, record *models.TransactionRecord) error {
	query := `
		INSERT INTO transactions (id, amount, kind, requester_id, responder_id, status, rating, created_at)
		VALUES (:id, :amount, :kind, :requester_id, :responder_id, :status, :rating, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("failed to insert transaction record: %w", err)
	}
	return nil
}

// List returns all records ordered by creation time descending
func (r *PostgresTransactionRepo) List(ctx context.Context) ([]models.TransactionRecord, error) {
	query := `
		SELECT id, amount, kind, requester_id, responder_id, status, rating, created_at
		FROM transactions
		ORDER BY created_at DESC
	`

	var records []models.TransactionRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list transaction records: %w", err)
	}
	return records, nil
}
