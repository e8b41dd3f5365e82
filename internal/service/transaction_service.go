package service

import (
	"context"

	"gstbooks/internal/domain"
	"gstbooks/internal/port"
)

// TransactionService lists finalized taxable transactions.
type TransactionService interface {
	List(ctx context.Context, filters domain.TransactionFilters) ([]domain.TaxableTransaction, int, error)
}

type transactionService struct {
	txnRepo port.TransactionRepository
}

// NewTransactionService creates a new TransactionService implementation.
func NewTransactionService(txnRepo port.TransactionRepository) TransactionService {
	return &transactionService{txnRepo: txnRepo}
}

func (s *transactionService) List(ctx context.Context, filters domain.TransactionFilters) ([]domain.TaxableTransaction, int, error) {
	return s.txnRepo.List(ctx, filters)
}
