package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"gstbooks/internal/domain"
	"gstbooks/internal/port"
)

const transactionColumns = `id, document_number, transaction_date, direction,
	party_name, party_gstin, gst_rate, taxable_value, cgst, sgst, igst,
	grand_total, created_at`

type transactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepo creates a new PostgreSQL-backed TransactionRepository.
func NewTransactionRepo(db *sqlx.DB) port.TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) ListForPeriod(ctx context.Context, from, to time.Time, direction domain.Direction) ([]domain.TaxableTransaction, error) {
	query := fmt.Sprintf(`SELECT %s
	FROM tax_documents
	WHERE finalized
	  AND direction = $1
	  AND transaction_date >= $2 AND transaction_date <= $3
	ORDER BY transaction_date ASC, document_number ASC`, transactionColumns)

	txns := []domain.TaxableTransaction{}
	if err := sqlx.SelectContext(ctx, r.db, &txns, query, direction, from, to); err != nil {
		return nil, fmt.Errorf("%w: transactionRepo.ListForPeriod: %v", domain.ErrUpstreamFetch, err)
	}
	return txns, nil
}

// buildListWhere constructs a dynamic WHERE clause for transaction listings.
// It returns the clause string (starting with "WHERE") and the positional
// arguments.
func buildListWhere(filters domain.TransactionFilters) (clause string, args []interface{}) {
	clause = "WHERE finalized"
	argN := 1

	if filters.Direction != "" {
		clause += fmt.Sprintf(" AND direction = $%d", argN)
		args = append(args, filters.Direction)
		argN++
	}
	if filters.From != nil {
		clause += fmt.Sprintf(" AND transaction_date >= $%d", argN)
		args = append(args, *filters.From)
		argN++
	}
	if filters.To != nil {
		clause += fmt.Sprintf(" AND transaction_date <= $%d", argN)
		args = append(args, *filters.To)
		argN++
	}
	if filters.PartyGSTIN != "" {
		clause += fmt.Sprintf(" AND party_gstin = $%d", argN)
		args = append(args, filters.PartyGSTIN)
	}

	return clause, args
}

func (r *transactionRepo) List(ctx context.Context, filters domain.TransactionFilters) ([]domain.TaxableTransaction, int, error) {
	whereClause, args := buildListWhere(filters)

	dataQuery := fmt.Sprintf(`SELECT %s
	FROM tax_documents
	%s
	ORDER BY transaction_date ASC, document_number ASC
	OFFSET %d LIMIT %d`, transactionColumns, whereClause, filters.Offset, filters.Limit)

	txns := []domain.TaxableTransaction{}
	if err := sqlx.SelectContext(ctx, r.db, &txns, dataQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("%w: transactionRepo.List data: %v", domain.ErrUpstreamFetch, err)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM tax_documents %s`, whereClause)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("%w: transactionRepo.List count: %v", domain.ErrUpstreamFetch, err)
	}

	return txns, total, nil
}
