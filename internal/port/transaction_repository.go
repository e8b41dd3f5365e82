package port

import (
	"context"
	"time"

	"gstbooks/internal/domain"
)

// TransactionRepository reads finalized taxable transactions. Draft and void
// documents never surface here; filtering them is the write side's concern.
type TransactionRepository interface {
	// ListForPeriod returns every finalized transaction of the given
	// direction dated within [from, to] inclusive.
	ListForPeriod(ctx context.Context, from, to time.Time, direction domain.Direction) ([]domain.TaxableTransaction, error)
	// List returns a filtered, paginated transaction listing with the total
	// match count.
	List(ctx context.Context, filters domain.TransactionFilters) ([]domain.TaxableTransaction, int, error)
}
